package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCaseTool(t *testing.T) {
	tests := []struct {
		text   string
		target string
		want   bool
	}{
		{"foo_bar", "snake", true},
		{"fooBar", "snake", false},
		{"fooBar", "camel", true},
		{"FooBar", "pascal", true},
		{"FOO-BAR", "cobol", true},
		{"Super Mario 64", "title", true},
		{"super mario 64", "title", false},
	}
	for _, tt := range tests {
		t.Run(tt.text+"_"+tt.target, func(t *testing.T) {
			input := isCaseInput{Text: tt.text, Target: tt.target}
			result, output, err := handleIsCase(context.Background(), &mcp.CallToolRequest{}, input)
			require.NoError(t, err)
			require.Nil(t, result)
			assert.Equal(t, tt.want, output.Match)
		})
	}
}

func TestIsCaseTool_UnknownTarget(t *testing.T) {
	input := isCaseInput{Text: "foo", Target: "nope"}
	result, _, err := handleIsCase(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestIsCaseTool_InputTooLarge(t *testing.T) {
	old := cfg.MaxInputBytes
	cfg.MaxInputBytes = 2
	t.Cleanup(func() { cfg.MaxInputBytes = old })

	input := isCaseInput{Text: "foo", Target: "snake"}
	result, _, err := handleIsCase(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
