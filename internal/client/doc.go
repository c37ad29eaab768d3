// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, local history storage, and the
// server adapter into a single process lifecycle.
package client
