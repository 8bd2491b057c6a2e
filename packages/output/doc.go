// Package output renders responses and errors for the terminal.
package output
