// Package app wires application dependencies for the binaries.
//
// It loads runtime configuration from HASHICON_* environment variables and
// builds the concrete cache, render service and logger from Config, exposing
// them via the Wire struct.
package app
