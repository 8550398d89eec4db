// Package repl implements the interactive command loop.
//
// A Session reads one line at a time, resolves the first token against the
// command table, runs the command against the loaded dataset and writes the
// result. The table is the single source of truth for both dispatch and the
// help text.
//
// The loop is a two-state machine. It starts Running and moves to Stopped only
// on the quit command (or when input is exhausted). Invalid commands and bad
// arguments are reported to the user and leave the state unchanged.
package repl
