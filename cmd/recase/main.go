package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/cmd/recase/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("recase v%s\n", recase.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		exitOnError(commands.HandleConvert(args))
	case "is":
		if err := commands.HandleIs(args); err != nil {
			if !errors.Is(err, commands.ErrNotInCase) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	case "mutate":
		exitOnError(commands.HandleMutate(args))
	case "detect":
		exitOnError(commands.HandleDetect(args))
	case "cases":
		exitOnError(commands.HandleCases(args))
	case "mcp":
		exitOnError(commands.HandleMCP(args))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// knownCommands lists every dispatchable command name for typo suggestions.
var knownCommands = []string{
	"convert", "is", "mutate", "detect", "cases", "mcp", "version", "help",
}

// suggestCommand returns the known command closest to input within edit
// distance 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`recase - string case conversion tools

Usage:
  recase <command> [options]

Commands:
  convert     Convert a string to a named case
  is          Check whether a string is in a named case
  mutate      Convert with explicit pattern/boundary/delimiter overrides
  detect      Report the word boundaries present in a string
  cases       List the registered cases
  mcp         Start an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  recase convert -t snake 'SuperMario64'
  recase convert -t title -f lower 'super_mario_64'
  recase is -c pascal 'FooBar'
  recase mutate -b upper-digit -d - '567N9854G321K'
  recase detect 'HTTPRequest'
  recase cases --kind deterministic

Run 'recase <command> --help' for more information on a command.`)
}
