package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/recase/convert"
)

type isCaseInput struct {
	Text   string `json:"text"   jsonschema:"The string to check"`
	Target string `json:"target" jsonschema:"Case name to check membership of"`
}

type isCaseOutput struct {
	Match  bool   `json:"match"`
	Target string `json:"target"`
}

func handleIsCase(_ context.Context, _ *mcp.CallToolRequest, input isCaseInput) (*mcp.CallToolResult, isCaseOutput, error) {
	if err := checkInput(input.Text); err != nil {
		return errResult(err), isCaseOutput{}, nil
	}

	target, err := convert.ParseCase(input.Target)
	if err != nil {
		return errResult(err), isCaseOutput{}, nil
	}

	match, err := convert.IsCase(input.Text, target, seedOptions()...)
	if err != nil {
		return errResult(err), isCaseOutput{}, nil
	}
	return nil, isCaseOutput{Match: match, Target: target.String()}, nil
}
