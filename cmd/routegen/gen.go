package main

import (
	"github.com/spf13/cobra"

	"github.com/routegen-dev/routegen/internal/config"
	"github.com/routegen-dev/routegen/internal/gen"
)

func genCmd() *cobra.Command {
	var pages, out, types string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the route configuration once",
		Long: `Scan the pages directory and write the routes module and the
route-path type module.

The output is deterministic: running it multiple times produces identical
output unless the pages tree changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(pages, out, types)
			if err != nil {
				return err
			}
			return runGen(cmd, cfg)
		},
	}

	addGenFlags(cmd, &pages, &out, &types)

	return cmd
}

// addGenFlags registers the flags shared by gen and dev.
func addGenFlags(cmd *cobra.Command, pages, out, types *string) {
	cmd.Flags().StringVarP(pages, "pages", "p", "", "Pages directory (default: "+config.DefaultPagesDir+")")
	cmd.Flags().StringVarP(out, "out", "o", "", "Routes module output file (default: "+config.DefaultOutFile+")")
	cmd.Flags().StringVarP(types, "types", "t", "", "Type module output file (default: "+config.DefaultTypesFile+")")
}

// loadConfig loads routegen.json and applies flag overrides.
func loadConfig(pages, out, types string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if pages != "" {
		cfg.PagesDir = pages
	}
	if out != "" {
		cfg.OutFile = out
	}
	if types != "" {
		cfg.TypesFile = types
	}
	return cfg, cfg.Validate()
}

func runGen(cmd *cobra.Command, cfg *config.Config) error {
	info("Scanning %s...", cfg.PagesDir)

	res := gen.New(cfg).Generate(cmd.Context())
	for _, warning := range res.Warnings {
		warn("%s", warning)
	}
	if res.Err != nil {
		return res.Err
	}

	info("Found %d routes, %d typed paths", res.Routes, res.Paths)
	success("Generated %s", cfg.OutFile)
	success("Generated %s", cfg.TypesFile)
	return nil
}
