package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/recase/convert"
)

type listCasesInput struct {
	Kind string `json:"kind,omitempty" jsonschema:"Filter: all (default)\\, deterministic\\, or random"`
}

type caseInfo struct {
	Name          string   `json:"name"`
	Pattern       string   `json:"pattern"`
	Delim         string   `json:"delim"`
	Boundaries    []string `json:"boundaries,omitempty"`
	Deterministic bool     `json:"deterministic"`
	Aliases       []string `json:"aliases,omitempty"`
	Example       string   `json:"example"`
}

type listCasesOutput struct {
	Cases []caseInfo `json:"cases"`
	Count int        `json:"count"`
}

// listCasesExampleInput is the sample string whose conversion is shown
// for each deterministic case.
const listCasesExampleInput = "example_input_string"

func handleListCases(_ context.Context, _ *mcp.CallToolRequest, input listCasesInput) (*mcp.CallToolResult, listCasesOutput, error) {
	var cases []convert.Case
	switch input.Kind {
	case "", "all":
		cases = convert.AllCases()
	case "deterministic":
		cases = convert.DeterministicCases()
	case "random":
		cases = convert.RandomCases()
	default:
		return errResult(fmt.Errorf("unknown kind %q: want all, deterministic, or random", input.Kind)), listCasesOutput{}, nil
	}

	output := listCasesOutput{
		Cases: makeSlice[caseInfo](len(cases)),
		Count: len(cases),
	}
	for _, c := range cases {
		info := caseInfo{
			Name:          c.String(),
			Pattern:       c.Pattern().String(),
			Delim:         c.Delim(),
			Deterministic: c.Deterministic(),
		}
		for _, b := range c.Boundaries() {
			info.Boundaries = append(info.Boundaries, b.String())
		}
		for _, alias := range c.Aliases() {
			info.Aliases = append(info.Aliases, alias.String())
		}
		if c.Deterministic() {
			example, err := convert.ToCase(listCasesExampleInput, c)
			if err != nil {
				return errResult(err), listCasesOutput{}, nil
			}
			info.Example = example
		}
		output.Cases = append(output.Cases, info)
	}
	return nil, output, nil
}
