package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/routegen-dev/routegen/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "routegen",
		Short: "File-based route configuration generator",
		Long: `routegen turns a pages directory into a route configuration module
and a companion type listing every valid route path.

File conventions:

  index.tsx     renders at the parent's path
  layout.tsx    wraps the directory's routes
  loading.tsx   suspense fallback for lazy descendants
  [slug].tsx    dynamic path parameter
  404.tsx       catch-all route

Files directly under the pages root are imported eagerly; nested files
are lazy-loaded on first navigation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		genCmd(),
		devCmd(),
		initCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var rerr *errors.RouteError
		if stderrors.As(err, &rerr) {
			fmt.Fprint(os.Stderr, color.RedString(rerr.Format()))
		} else {
			errorMsg("%s", err)
		}
		os.Exit(1)
	}
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("%s %s\n", color.YellowString("⚠"), fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), fmt.Sprintf(format, args...))
}
