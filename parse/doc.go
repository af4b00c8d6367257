// Package parse pulls integers out of raw puzzle text without a format
// string: every maximal numeric run becomes one value.
//
// What:
//
//   - NumsPositive: every digit run in the input, as the chosen int type.
//   - NumsSigned: the same, with a '-' glued to the front of a digit run
//     negating it.
//
// Why:
//
//   - Puzzle inputs bury numbers in arbitrary prose and punctuation;
//     scanning runs beats writing a regexp or a Sscanf format per puzzle.
//
// Semantics:
//
//   - Runs that do not start with a parsable number are skipped ("--" or
//     a stray '-' yields nothing).
//   - A run is consumed from its start for as long as it parses; "3-4"
//     under NumsSigned yields 3 (the '-' belongs to the same run but the
//     parse stops before it).
//   - Runs whose value overflows the chosen integer type are skipped,
//     not truncated.
//
// Complexity: O(len(input)) for either scanner.
package parse
