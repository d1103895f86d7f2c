package commands

import (
	"testing"
)

func TestSetupConvertFlags(t *testing.T) {
	fs, flags := SetupConvertFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.To != "" {
			t.Errorf("expected To to be empty by default, got '%s'", flags.To)
		}
		if flags.From != "" {
			t.Errorf("expected From to be empty by default, got '%s'", flags.From)
		}
		if flags.Format != FormatText {
			t.Errorf("expected Format '%s' by default, got '%s'", FormatText, flags.Format)
		}
		if flags.Seed != 0 {
			t.Errorf("expected Seed 0 by default, got %d", flags.Seed)
		}
		if flags.NFC {
			t.Error("expected NFC to be false by default")
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-t", "snake", "-f", "camel", "--seed", "42", "--nfc", "fooBar"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags.To != "snake" {
			t.Errorf("expected To 'snake', got '%s'", flags.To)
		}
		if flags.From != "camel" {
			t.Errorf("expected From 'camel', got '%s'", flags.From)
		}
		if flags.Seed != 42 {
			t.Errorf("expected Seed 42, got %d", flags.Seed)
		}
		if !flags.NFC {
			t.Error("expected NFC to be true")
		}
		if fs.Arg(0) != "fooBar" {
			t.Errorf("expected text arg 'fooBar', got '%s'", fs.Arg(0))
		}
	})

	t.Run("long flags", func(t *testing.T) {
		fs2, flags2 := SetupConvertFlags()
		args := []string{"--to", "kebab", "--from", "pascal", "FooBar"}
		if err := fs2.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags2.To != "kebab" {
			t.Errorf("expected To 'kebab', got '%s'", flags2.To)
		}
		if flags2.From != "pascal" {
			t.Errorf("expected From 'pascal', got '%s'", flags2.From)
		}
	})
}

func TestHandleConvert_NoArgs(t *testing.T) {
	if err := HandleConvert([]string{"-t", "snake"}); err == nil {
		t.Error("expected error when no text provided")
	}
}

func TestHandleConvert_Help(t *testing.T) {
	if err := HandleConvert([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleConvert_NoTarget(t *testing.T) {
	if err := HandleConvert([]string{"fooBar"}); err == nil {
		t.Error("expected error when no target case provided")
	}
}

func TestHandleConvert_UnknownTarget(t *testing.T) {
	if err := HandleConvert([]string{"-t", "shouting", "fooBar"}); err == nil {
		t.Error("expected error for unknown target case")
	}
}

func TestHandleConvert_UnknownSource(t *testing.T) {
	if err := HandleConvert([]string{"-t", "snake", "-f", "nope", "fooBar"}); err == nil {
		t.Error("expected error for unknown source case")
	}
}

func TestHandleConvert_InvalidFormat(t *testing.T) {
	if err := HandleConvert([]string{"-t", "snake", "--format", "xml", "fooBar"}); err == nil {
		t.Error("expected error for invalid output format")
	}
}

func TestHandleConvert_Success(t *testing.T) {
	if err := HandleConvert([]string{"-t", "snake", "fooBarBaz"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleConvert_StructuredOutput(t *testing.T) {
	if err := HandleConvert([]string{"-t", "snake", "--format", "json", "fooBarBaz"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := HandleConvert([]string{"-t", "snake", "--format", "yaml", "fooBarBaz"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
