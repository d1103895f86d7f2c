package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/recase/convert"
)

// ErrNotInCase is returned by HandleIs when the text does not match the
// requested case, so main can exit nonzero without printing a message.
var ErrNotInCase = errors.New("text is not in the requested case")

// IsFlags contains flags for the is command
type IsFlags struct {
	Case   string
	Format string
	Quiet  bool
}

// SetupIsFlags creates and configures a FlagSet for the is command.
func SetupIsFlags() (*flag.FlagSet, *IsFlags) {
	fs := flag.NewFlagSet("is", flag.ContinueOnError)
	flags := &IsFlags{}

	fs.StringVar(&flags.Case, "c", "", "case name to check membership of (required)")
	fs.StringVar(&flags.Case, "case", "", "case name to check membership of (required)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no output, exit status only")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no output, exit status only")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: recase is [flags] <text|->\n\n")
		Writef(fs.Output(), "Check whether a string is already written in a named case.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  recase is -c snake 'foo_bar'\n")
		Writef(fs.Output(), "  recase is -c pascal -q 'FooBar' && echo ok\n")
		Writef(fs.Output(), "\nExit Status:\n")
		Writef(fs.Output(), "  0    The text is in the requested case\n")
		Writef(fs.Output(), "  1    The text is not, or an error occurred\n")
	}

	return fs, flags
}

// isResult is the structured output of the is command.
type isResult struct {
	Input  string `json:"input"  yaml:"input"`
	Target string `json:"target" yaml:"target"`
	Match  bool   `json:"match"  yaml:"match"`
}

// HandleIs executes the is command. A non-matching text yields
// ErrNotInCase after printing the result.
func HandleIs(args []string) error {
	fs, flags := SetupIsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.Case == "" {
		fs.Usage()
		return fmt.Errorf("case name is required (use -c or --case)")
	}

	text, err := ReadText(fs)
	if err != nil {
		return err
	}

	target, err := convert.ParseCase(flags.Case)
	if err != nil {
		return err
	}

	match, err := convert.IsCase(text, target)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		out := isResult{Input: text, Target: target.String(), Match: match}
		if flags.Format == FormatText {
			fmt.Println(match)
		} else if err := OutputStructured(out, flags.Format); err != nil {
			return err
		}
	}

	if !match {
		return ErrNotInCase
	}
	return nil
}
