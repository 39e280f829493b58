// Package query holds the pure search and sort routines used to derive views
// of the flight and booking collections. Nothing here does I/O or mutates its input.
package query
