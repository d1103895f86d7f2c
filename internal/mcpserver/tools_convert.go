package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/recase/convert"
)

type convertInput struct {
	Text   string `json:"text"             jsonschema:"The string to convert"`
	Target string `json:"target"           jsonschema:"Target case name (snake\\, camel\\, pascal\\, kebab\\, cobol\\, train\\, title\\, flat\\, ...)"`
	Source string `json:"source,omitempty" jsonschema:"Optional source case. Its boundary set replaces the default boundaries during segmentation."`
}

type convertOutput struct {
	Result string `json:"result"`
	Target string `json:"target"`
	Source string `json:"source,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if err := checkInput(input.Text); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	target, err := convert.ParseCase(input.Target)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{Target: target.String()}

	if input.Source != "" {
		source, err := convert.ParseCase(input.Source)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		output.Source = source.String()
		output.Result, err = convert.ToCaseFrom(input.Text, target, source, seedOptions()...)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		return nil, output, nil
	}

	output.Result, err = convert.ToCase(input.Text, target, seedOptions()...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	return nil, output, nil
}
