package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/recase/boundary"
)

type detectBoundariesInput struct {
	Text string `json:"text" jsonschema:"The string to scan for word boundaries"`
}

type detectBoundariesOutput struct {
	Boundaries []string `json:"boundaries"`
	Count      int      `json:"count"`
}

func handleDetectBoundaries(_ context.Context, _ *mcp.CallToolRequest, input detectBoundariesInput) (*mcp.CallToolResult, detectBoundariesOutput, error) {
	if err := checkInput(input.Text); err != nil {
		return errResult(err), detectBoundariesOutput{}, nil
	}

	found := boundary.ListFrom(input.Text)
	output := detectBoundariesOutput{
		Boundaries: makeSlice[string](len(found)),
		Count:      len(found),
	}
	for _, b := range found {
		output.Boundaries = append(output.Boundaries, b.String())
	}
	return nil, output, nil
}
