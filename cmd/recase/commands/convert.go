package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/recase/convert"
	"github.com/erraggy/recase/pattern"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	To     string
	From   string
	Format string
	Seed   uint64
	NFC    bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.To, "t", "", "target case name (required)")
	fs.StringVar(&flags.To, "to", "", "target case name (required)")
	fs.StringVar(&flags.From, "f", "", "source case: segment using its boundary set instead of the defaults")
	fs.StringVar(&flags.From, "from", "", "source case: segment using its boundary set instead of the defaults")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.Uint64Var(&flags.Seed, "seed", 0, "fixed seed for the random cases (0 uses process randomness)")
	fs.BoolVar(&flags.NFC, "nfc", false, "normalize input to Unicode NFC before segmentation")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: recase convert [flags] <text|->\n\n")
		Writef(fs.Output(), "Convert a string to a named case.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  recase convert -t snake 'SuperMario64'\n")
		Writef(fs.Output(), "  recase convert -t title -f lower 'super_mario_64'\n")
		Writef(fs.Output(), "  recase convert -t random --seed 42 'hello world'\n")
		Writef(fs.Output(), "  echo FooBarBaz | recase convert -t kebab -\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Case names are matched case-insensitively (\"screaming-snake\" equals \"ScreamingSnake\")\n")
		Writef(fs.Output(), "  - Run 'recase cases' to list the registered cases\n")
	}

	return fs, flags
}

// convertResult is the structured output of the convert command.
type convertResult struct {
	Input  string `json:"input"  yaml:"input"`
	Target string `json:"target" yaml:"target"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Result string `json:"result" yaml:"result"`
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.To == "" {
		fs.Usage()
		return fmt.Errorf("target case is required (use -t or --to)")
	}

	text, err := ReadText(fs)
	if err != nil {
		return err
	}

	target, err := convert.ParseCase(flags.To)
	if err != nil {
		return err
	}

	var opts []convert.Option
	if flags.Seed != 0 {
		opts = append(opts, convert.WithBitSource(pattern.NewSeededSource(flags.Seed)))
	}
	if flags.NFC {
		opts = append(opts, convert.WithNFC())
	}

	out := convertResult{Input: text, Target: target.String()}
	if flags.From != "" {
		source, err := convert.ParseCase(flags.From)
		if err != nil {
			return err
		}
		out.Source = source.String()
		out.Result, err = convert.ToCaseFrom(text, target, source, opts...)
		if err != nil {
			return err
		}
	} else {
		out.Result, err = convert.ToCase(text, target, opts...)
		if err != nil {
			return err
		}
	}

	if flags.Format == FormatText {
		fmt.Println(out.Result)
		return nil
	}
	return OutputStructured(out, flags.Format)
}
