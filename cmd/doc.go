// Package cmd implements the command-line interface for immu. It provides
// a small command hierarchy around the library, mainly for measuring the
// containers on the host machine.
//
// The package is organized into subpackages:
//
//   - bench: Benchmark workloads for the persistent containers, the ring
//     buffer queue and the dynamic array stack
//   - util: Shared utilities for command-line processing and configuration
//     (internal use)
//
// See immu -help for a list of all commands.
package cmd
