package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/recase/boundary"
	"github.com/erraggy/recase/convert"
	"github.com/erraggy/recase/pattern"
)

type mutateInput struct {
	Text       string   `json:"text"                 jsonschema:"The string to convert"`
	Pattern    string   `json:"pattern,omitempty"    jsonschema:"Optional letter-casing pattern (lowercase\\, uppercase\\, capital\\, sentence\\, camel\\, alternating\\, toggle\\, random\\, pseudo-random). Omitted leaves casing untouched."`
	Boundaries []string `json:"boundaries,omitempty" jsonschema:"Optional boundary names to segment on. Omitted uses the defaults; an empty list keeps the input as one word."`
	Delim      string   `json:"delim,omitempty"      jsonschema:"Delimiter placed between words. Omitted concatenates."`
	Source     string   `json:"source,omitempty"     jsonschema:"Optional source case whose boundary set replaces the defaults. Ignored when boundaries is given."`
}

type mutateOutput struct {
	Result string `json:"result"`
}

func handleMutate(_ context.Context, _ *mcp.CallToolRequest, input mutateInput) (*mcp.CallToolResult, mutateOutput, error) {
	if err := checkInput(input.Text); err != nil {
		return errResult(err), mutateOutput{}, nil
	}

	opts := seedOptions()

	if input.Pattern != "" {
		p, err := pattern.Parse(input.Pattern)
		if err != nil {
			return errResult(err), mutateOutput{}, nil
		}
		opts = append(opts, convert.WithPattern(p))
	}

	if input.Boundaries != nil {
		bs := make([]boundary.Boundary, 0, len(input.Boundaries))
		for _, name := range input.Boundaries {
			b, err := boundary.Parse(name)
			if err != nil {
				return errResult(err), mutateOutput{}, nil
			}
			bs = append(bs, b)
		}
		opts = append(opts, convert.WithBoundaries(bs...))
	} else if input.Source != "" {
		source, err := convert.ParseCase(input.Source)
		if err != nil {
			return errResult(err), mutateOutput{}, nil
		}
		opts = append(opts, convert.WithSourceCase(source))
	}

	if input.Delim != "" {
		opts = append(opts, convert.WithDelim(input.Delim))
	}

	result, err := convert.Mutate(input.Text, opts...)
	if err != nil {
		return errResult(err), mutateOutput{}, nil
	}
	return nil, mutateOutput{Result: result}, nil
}
