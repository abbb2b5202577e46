// Package main is the entry point for the gamelist CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/gamelist/internal/config"
	"github.com/LISSConsulting/gamelist/internal/game"
	"github.com/LISSConsulting/gamelist/internal/menu"
	"github.com/LISSConsulting/gamelist/internal/store"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "gamelist",
		Short:   "Track the video games you own and the ones on your wishlist",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.InOrStdin(), cmd.OutOrStdout(), store.DefaultPath, "")
		},
	}
}

// runMenu loads config and games, then runs the menu until the user saves
// and exits. A missing data file starts an empty list.
func runMenu(in io.Reader, out io.Writer, dataPath, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	games, err := store.Load(dataPath)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintf(out, "File '%s' not found. Starting with an empty game list.\n", dataPath)
	} else if err != nil {
		return err
	}

	return menu.New(game.NewLibrary(games), dataPath, cfg, in, out).Run()
}
