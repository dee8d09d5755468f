// Package terminal holds the terminal-facing helpers tcell leaves to the caller:
// color capability selection and emergency restoration after a crash.
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
