package commands

import (
	"testing"
)

func TestSetupMCPFlags(t *testing.T) {
	fs := SetupMCPFlags()
	if fs.Name() != "mcp" {
		t.Errorf("expected FlagSet name 'mcp', got '%s'", fs.Name())
	}
	if err := fs.Parse([]string{}); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
}

func TestHandleMCP_Help(t *testing.T) {
	if err := HandleMCP([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleMCP_RejectsUnknownFlags(t *testing.T) {
	if err := HandleMCP([]string{"--bogus"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}
