package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/registry"
)

var (
	flagFormat        string
	flagConfigVariant string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use: the loaded file (or the
built-in defaults) with the selected variant's rules applied.

The output is a complete config file and can be edited and passed back
with --config.

Examples:
  bounce config
  bounce config --variant arcade
  bounce config --format toml > bounce.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", string(config.FormatYAML), "Output format: yaml, toml")
	configCmd.Flags().StringVar(&flagConfigVariant, "variant", "", "Apply a variant's rules (default: keep the file's rules)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.LoadBounce(flagConfig)
	if err != nil {
		return err
	}

	if flagConfigVariant != "" {
		v, err := registry.Lookup(flagConfigVariant)
		if err != nil {
			return err
		}
		config.ApplyVariant(&cfg, v.Rules())
	}

	format := config.Format(flagFormat)
	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}
