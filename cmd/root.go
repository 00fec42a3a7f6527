package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "tileserv",
	Version: "v0.1.0",
	Short:   "A lightweight slippy map tile server",
	Long: `tileserv serves pre-rendered slippy map tiles over HTTP.

Tiles are read from a {z}/{x}/{y}.png directory tree or from an MBTiles
archive and exposed at /tiles/{z}/{x}/{y}, where {z} is the zoom level
and {x} and {y} are the horizontal and vertical tile indexes.

Examples:
  tileserv serve --tiles-dir=/var/lib/tiles --host=0.0.0.0 --port=5000 --log-level=warn
  tileserv serve --backend=mbtiles --mbtiles=world.mbtiles`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
