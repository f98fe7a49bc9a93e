package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xela07ax/predictaflow/internal/domain"
	"github.com/xela07ax/predictaflow/internal/mockdata"
)

type generateFlags struct {
	industry string
	format   string
	seed     uint64
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print generated mock data without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.industry, "industry", "", "retail, hospitality or waste (default: all industries)")
	f.StringVar(&flags.format, "format", "json", "output format: json or yaml")
	f.Uint64Var(&flags.seed, "seed", 0, "random seed, 0 picks a random one")
	return cmd
}

func runGenerate(w, errW io.Writer, flags generateFlags) error {
	format := strings.ToLower(flags.format)
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format %q, expected json or yaml", flags.format)
	}

	catalog := mockdata.BuildCatalog(mockdata.NewSeededGenerator(flags.seed))

	var out any = catalog
	if flags.industry != "" {
		// Та же подмена, что и в API: неизвестная отрасль -> retail
		ds, ok := catalog.Lookup(flags.industry)
		if !ok {
			fmt.Fprintf(errW, "unknown industry %q, showing %s\n", flags.industry, domain.DefaultIndustry)
		}
		out = ds
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
}
