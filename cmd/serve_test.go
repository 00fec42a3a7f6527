package cmd

import (
	"testing"

	"github.com/VinciYan/tileserv/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	// Nothing set on the command line, so the environment values stay.
	applyFlags(serveCmd, cfg)
	assert.Equal(t, "Tiles", cfg.Tiles.Dir)
	assert.Equal(t, "localhost", cfg.HTTP.Server.Host)
	assert.Equal(t, "5000", cfg.HTTP.Server.Port)

	require.NoError(t, serveCmd.Flags().Set("tiles-dir", "/srv/tiles"))
	require.NoError(t, serveCmd.Flags().Set("host", "0.0.0.0"))
	require.NoError(t, serveCmd.Flags().Set("port", "9000"))
	require.NoError(t, serveCmd.Flags().Set("log-level", "warn"))
	require.NoError(t, serveCmd.Flags().Set("log-dir", ""))
	require.NoError(t, serveCmd.Flags().Set("backend", "mbtiles"))
	require.NoError(t, serveCmd.Flags().Set("mbtiles", "world.mbtiles"))

	applyFlags(serveCmd, cfg)

	assert.Equal(t, "/srv/tiles", cfg.Tiles.Dir)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Server.Host)
	assert.Equal(t, "9000", cfg.HTTP.Server.Port)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Empty(t, cfg.Logger.Dir)
	assert.Equal(t, config.BackendMBTiles, cfg.Tiles.Backend)
	assert.Equal(t, "world.mbtiles", cfg.Tiles.MBTilesPath)

	require.NoError(t, cfg.Validate())
}
