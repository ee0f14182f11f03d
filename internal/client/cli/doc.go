// Package cli provides the interactive userdesk command-line client.
//
// It drives the session and collection stores from a small REPL: log in,
// page through the users collection, search the loaded page and create,
// edit or delete users. Writes are accepted by the demo API but never
// stored there, so a page reload drops local changes.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
