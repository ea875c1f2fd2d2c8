package cmd

import (
	"fmt"
	"os"

	"github.com/noshiro-pf/immu/cmd/bench"
	"github.com/spf13/cobra"
)

const (
	Version = "0.4.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "immu",
		Short: "persistent collections and bounded buffers",
		Long: fmt.Sprintf(`immu (v%s)

Persistent (immutable) map and set containers with projection support,
plus single-owner ring-buffer queue and dynamic-array stack, written in Go.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of immu",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("immu v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(bench.BenchCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
