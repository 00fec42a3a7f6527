package cmd

import (
	"log"

	"github.com/VinciYan/tileserv/internal/app"
	"github.com/VinciYan/tileserv/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serveTilesDir string
	serveHost     string
	servePort     string
	serveLogLevel string
	serveLogDir   string
	serveBackend  string
	serveMBTiles  string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tile server",
	Long:  `Starts the HTTP server and serves tiles from the configured backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Load configuration from the environment
		cfg, err := config.New()
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		// Command line flags win over environment variables
		applyFlags(cmd, cfg)

		if err := cfg.Validate(); err != nil {
			log.Fatalf("invalid config: %v", err)
		}

		app.Run(cfg)
	},
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("tiles-dir") {
		cfg.Tiles.Dir = serveTilesDir
	}
	if cmd.Flags().Changed("host") {
		cfg.HTTP.Server.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.HTTP.Server.Port = servePort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logger.Level = serveLogLevel
	}
	if cmd.Flags().Changed("log-dir") {
		cfg.Logger.Dir = serveLogDir
	}
	if cmd.Flags().Changed("backend") {
		cfg.Tiles.Backend = serveBackend
	}
	if cmd.Flags().Changed("mbtiles") {
		cfg.Tiles.MBTilesPath = serveMBTiles
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveTilesDir, "tiles-dir", "Tiles", "directory containing tile images")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "host to bind the server to")
	serveCmd.Flags().StringVar(&servePort, "port", "5000", "port to bind the server to")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&serveLogDir, "log-dir", "logs", "directory for rotated log files, empty disables file logging")
	serveCmd.Flags().StringVar(&serveBackend, "backend", config.BackendFilesystem, "tile backend (filesystem, mbtiles)")
	serveCmd.Flags().StringVar(&serveMBTiles, "mbtiles", "", "path to an MBTiles archive (with --backend=mbtiles)")

	RootCmd.AddCommand(serveCmd)
}
