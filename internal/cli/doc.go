// Package cli parses command-line arguments, validates them and translates
// them into a Config. It also defines the error type used to report exit
// codes.
package cli
