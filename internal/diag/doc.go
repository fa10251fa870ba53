// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Every error produced by the lexer, the postfix converter, or the evaluator
// is a *diag.Error carrying a stable numeric Code plus the offending
// character or lexeme as data. Codes are banded per phase: 1xxx lexical,
// 2xxx conversion, 3xxx evaluation.
//
// The package performs no formatting, IO, or CLI integration; rendering
// lives in internal/diagfmt and the cmd layer. Callers match errors with
// errors.Is against a code-only template, or via CodeOf.
package diag
