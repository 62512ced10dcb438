package main

import (
	"github.com/spf13/cobra"

	"github.com/routegen-dev/routegen/internal/config"
	"github.com/routegen-dev/routegen/internal/templates"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a pages directory and configuration",
		Long: `Create a starter pages tree (index, layout, 404), the typed Link and
ScrollRestoration helpers, and a default routegen.json.

Existing files are never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			written, err := templates.Scaffold(dir, templates.Config{
				PagesDir:  config.DefaultPagesDir,
				OutFile:   config.DefaultOutFile,
				TypesFile: config.DefaultTypesFile,
			})
			if err != nil {
				return err
			}

			for _, path := range written {
				success("Created %s", path)
			}
			info("Run `routegen gen` to generate the route configuration.")
			return nil
		},
	}

	return cmd
}
