package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soare/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the minify cache",
	Long:  "Remove cached minify results from the cache directory ([cache].dir in soare.toml or $XDG_CACHE_HOME/soare).",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if settings.CacheDir == "" {
		return fmt.Errorf("no cache directory configured")
	}
	cache, err := driver.OpenDiskCache(settings.CacheDir)
	if err != nil {
		return err
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clean %q: %w", cache.Dir(), err)
	}
	if !quiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "removed cache in %s\n", cache.Dir())
	}
	return nil
}
