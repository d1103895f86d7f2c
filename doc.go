// Package recase provides a string case-conversion engine for
// identifier-like strings.
//
// recase detects word boundaries according to a configurable rule set,
// segments a string into words, mutates each word's letter-casing
// according to a chosen pattern, and rejoins the words with a chosen
// delimiter — producing a string in a target case such as snake_case,
// PascalCase, or kebab-case.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - boundary: word-boundary rules, segmentation, and boundary detection
//   - pattern: per-word letter-casing patterns, including two randomized ones
//   - convert: named cases, the converter, and membership checks
//
// Structured errors live in the caseerrors package.
//
// # Quick Start
//
// Convert a string to a named case:
//
//	import "github.com/erraggy/recase/convert"
//
//	out, err := convert.ToCase("super_mario_64", convert.Title)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // "Super Mario 64"
//
// Re-segment using the boundaries of a known source case:
//
//	out, err := convert.ToCaseFrom("toBe_or not-to-BE", convert.Cobol, convert.Kebab)
//	// "TOBE_OR NOT-TO-BE"
//
// Check whether a string is already in a case:
//
//	ok, err := convert.IsCase("fooBar", convert.Camel) // true
//
// Apply explicit overrides instead of a named case:
//
//	out, err := convert.Mutate("567N9854G321K",
//		convert.WithBoundaries(boundary.UpperDigit),
//		convert.WithDelim("-"),
//	)
//	// "567N-9854G-321K"
//
// Detect which boundaries occur in a string:
//
//	bs := boundary.ListFrom("strangeCombination-INDEED")
//
// # Randomized patterns
//
// The Random and PseudoRandom patterns consume random bits. By default
// they draw from a process-wide source that is safe for concurrent use;
// tests can inject a seeded source:
//
//	out, err := convert.ToCase("hello world", convert.Random,
//		convert.WithBitSource(pattern.NewSeededSource(42)))
//
// # Command line and MCP
//
// The cmd/recase command exposes the engine as a CLI (convert, is,
// mutate, detect, cases) and as an MCP server over stdio (recase mcp).
package recase
