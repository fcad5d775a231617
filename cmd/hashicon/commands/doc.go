// Package commands defines the hashicon CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate   Compose an icon for a seed and print or save its JSON
//   - inspect    Show the derived chain head, palette and pattern for a seed
//   - sizes      Print the size-category table
//
// # Implementation
//
// The root command builds the render service before any subcommand runs, so
// handlers share one service with the default size table. The CLI renders
// each invocation once, so no cache is attached.
package commands
