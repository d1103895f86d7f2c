package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/recase/boundary"
)

// DetectFlags contains flags for the detect command
type DetectFlags struct {
	Format string
}

// SetupDetectFlags creates and configures a FlagSet for the detect command.
func SetupDetectFlags() (*flag.FlagSet, *DetectFlags) {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	flags := &DetectFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: recase detect [flags] <text|->\n\n")
		Writef(fs.Output(), "Report which word-boundary rules fire anywhere in the text.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  recase detect 'HTTPRequest'\n")
		Writef(fs.Output(), "  recase detect --format json 'a-B_c 1Aa2b'\n")
	}

	return fs, flags
}

// detectResult is the structured output of the detect command.
type detectResult struct {
	Input      string   `json:"input"      yaml:"input"`
	Boundaries []string `json:"boundaries" yaml:"boundaries"`
}

// HandleDetect executes the detect command
func HandleDetect(args []string) error {
	fs, flags := SetupDetectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	text, err := ReadText(fs)
	if err != nil {
		return err
	}

	found := boundary.ListFrom(text)
	names := make([]string, 0, len(found))
	for _, b := range found {
		names = append(names, b.String())
	}

	if flags.Format == FormatText {
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}
	return OutputStructured(detectResult{Input: text, Boundaries: names}, flags.Format)
}
