package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/recase/convert"
)

// CasesFlags contains flags for the cases command
type CasesFlags struct {
	Kind   string
	Format string
}

// SetupCasesFlags creates and configures a FlagSet for the cases command.
func SetupCasesFlags() (*flag.FlagSet, *CasesFlags) {
	fs := flag.NewFlagSet("cases", flag.ContinueOnError)
	flags := &CasesFlags{}

	fs.StringVar(&flags.Kind, "kind", "all", "which cases to list: all, deterministic, or random")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: recase cases [flags]\n\n")
		Writef(fs.Output(), "List the registered cases with their pattern, delimiter, and boundary set.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  recase cases\n")
		Writef(fs.Output(), "  recase cases --kind random --format yaml\n")
	}

	return fs, flags
}

// caseEntry is one row of the cases command output.
type caseEntry struct {
	Name          string   `json:"name"                 yaml:"name"`
	Pattern       string   `json:"pattern"              yaml:"pattern"`
	Delim         string   `json:"delim"                yaml:"delim"`
	Boundaries    []string `json:"boundaries,omitempty" yaml:"boundaries,omitempty"`
	Deterministic bool     `json:"deterministic"        yaml:"deterministic"`
	Aliases       []string `json:"aliases,omitempty"    yaml:"aliases,omitempty"`
	Example       string   `json:"example,omitempty"    yaml:"example,omitempty"`
}

// casesExampleInput is the sample string shown converted next to each
// deterministic case.
const casesExampleInput = "example_input_string"

// HandleCases executes the cases command
func HandleCases(args []string) error {
	fs, flags := SetupCasesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("cases command takes no arguments")
	}

	var cases []convert.Case
	switch flags.Kind {
	case "all":
		cases = convert.AllCases()
	case "deterministic":
		cases = convert.DeterministicCases()
	case "random":
		cases = convert.RandomCases()
	default:
		return fmt.Errorf("invalid kind '%s'. Valid kinds: all, deterministic, random", flags.Kind)
	}

	entries := make([]caseEntry, 0, len(cases))
	for _, c := range cases {
		entry := caseEntry{
			Name:          c.String(),
			Pattern:       c.Pattern().String(),
			Delim:         c.Delim(),
			Deterministic: c.Deterministic(),
		}
		for _, b := range c.Boundaries() {
			entry.Boundaries = append(entry.Boundaries, b.String())
		}
		for _, alias := range c.Aliases() {
			entry.Aliases = append(entry.Aliases, alias.String())
		}
		if c.Deterministic() {
			example, err := convert.ToCase(casesExampleInput, c)
			if err != nil {
				return err
			}
			entry.Example = example
		}
		entries = append(entries, entry)
	}

	if flags.Format == FormatText {
		for _, e := range entries {
			line := fmt.Sprintf("%-16s %s", e.Name, e.Example)
			if !e.Deterministic {
				line = fmt.Sprintf("%-16s (random)", e.Name)
			}
			if len(e.Aliases) > 0 {
				line += fmt.Sprintf("  [aliases: %s]", strings.Join(e.Aliases, ", "))
			}
			fmt.Println(line)
		}
		return nil
	}
	return OutputStructured(entries, flags.Format)
}
