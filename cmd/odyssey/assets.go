package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-odyssey/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Check the assets directory",
	Long: `List every texture, icon and sound the game looks for in --assets
and whether it is usable. Exits with status 1 when anything is missing,
which is what --strict-assets would refuse to start on.

Examples:
  odyssey assets
  odyssey assets --assets ~/odyssey/assets`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(_ *cobra.Command, _ []string) {
	if !printAssets(os.Stdout, flagAssets) {
		os.Exit(1)
	}
}

// printAssets writes one line per manifest entry and reports whether all
// of them are usable.
func printAssets(w io.Writer, dir string) bool {
	rep := assets.Check(dir)
	failed := make(map[string]error, len(rep.Problems))
	for _, p := range rep.Problems {
		failed[p.Asset.Name] = p.Err
	}

	fmt.Fprintf(w, "Assets in %s\n\n", dir)
	for _, a := range assets.Manifest {
		status := "ok"
		if err, bad := failed[a.Name]; bad {
			status = err.Error()
		}
		fmt.Fprintf(w, "  %-8s  %-10s  %-20s  %s\n", a.Kind, a.Name, a.File, status)
	}

	if !rep.Empty() {
		fmt.Fprintf(w, "\n%d of %d assets unavailable; fallbacks will be used.\n",
			len(rep.Problems), len(assets.Manifest))
		return false
	}
	return true
}
