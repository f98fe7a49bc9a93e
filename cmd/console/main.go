package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version задается при сборке: -ldflags "-X main.version=x.y.z"
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "predictaflow",
		Short:         "PredictaFlow demo console with synthetic industry data",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newGenerateCmd())
	return root
}
