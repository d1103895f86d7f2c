package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/erraggy/recase/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: recase mcp\n\n")
		Writef(fs.Output(), "Start an MCP (Model Context Protocol) server over stdio exposing the\n")
		Writef(fs.Output(), "convert, is_case, mutate, detect_boundaries, and list_cases tools.\n\n")
		Writef(fs.Output(), "Configuration (environment variables):\n")
		Writef(fs.Output(), "  RECASE_SEED              fixed seed for the random cases (default: 0, process randomness)\n")
		Writef(fs.Output(), "  RECASE_MAX_INPUT_BYTES   largest accepted input text (default: 1048576)\n")
		Writef(fs.Output(), "\nExample Claude Desktop configuration:\n")
		Writef(fs.Output(), "  {\"mcpServers\": {\"recase\": {\"command\": \"recase\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
