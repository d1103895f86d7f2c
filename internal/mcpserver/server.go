// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the recase conversion engine as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/convert"
	"github.com/erraggy/recase/pattern"
)

const serverInstructions = `recase MCP server — converts identifier-like strings between cases (snake, camel, Pascal, kebab, ...), checks case membership, applies explicit pattern/boundary/delimiter overrides, and detects word boundaries.

Configuration: All defaults are configurable via RECASE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- RECASE_SEED (default: 0) — fixed seed for the Random/PseudoRandom cases; 0 draws fresh process randomness per call
- RECASE_MAX_INPUT_BYTES (default: 1048576) — largest accepted input text

Case and pattern names are matched case-insensitively and tolerate - and _ separators ("screaming-snake" equals "ScreamingSnake"). Use list_cases to enumerate the registry.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "recase", Version: recase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a string to a named case (snake, camel, pascal, kebab, cobol, train, title, flat, ...). Segments the input on default boundaries, or on the boundaries of the source case when source is given, then re-cases and rejoins the words.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "is_case",
		Description: "Check whether a string is already written in a named case. The check is a pure round trip: the string is converted to the case using its own boundaries and compared byte-for-byte.",
	}, handleIsCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mutate",
		Description: "Convert a string with explicit overrides instead of a named case: an optional pattern, an optional boundary set, and an optional delimiter. Omitting the pattern leaves letter-casing untouched; omitting boundaries segments on the defaults; omitting the delimiter concatenates words.",
	}, handleMutate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_boundaries",
		Description: "Scan a string and report which word-boundary rules fire anywhere in it (Hyphen, Underscore, Space, letter/digit adjacencies, Acronym). Useful for discovering what a source case's boundary set should contain.",
	}, handleDetectBoundaries)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_cases",
		Description: "List the registered cases with their pattern, delimiter, boundary set, aliases, and whether they are deterministic. Filter with kind=all|deterministic|random.",
	}, handleListCases)
}

// checkInput enforces the configured input size limit.
func checkInput(text string) error {
	if len(text) > cfg.MaxInputBytes {
		return fmt.Errorf("input of %d bytes exceeds RECASE_MAX_INPUT_BYTES (%d)", len(text), cfg.MaxInputBytes)
	}
	return nil
}

// seedOptions returns the conversion options implied by the server
// configuration: a per-call seeded bit source when RECASE_SEED is set.
func seedOptions() []convert.Option {
	if cfg.Seed == 0 {
		return nil
	}
	return []convert.Option{convert.WithBitSource(pattern.NewSeededSource(cfg.Seed))}
}

// makeSlice allocates a slice with capacity n, or returns nil for n == 0
// so empty collections marshal as absent rather than [].
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
