package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VinciYan/tileserv/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/paulmach/orb/maptile"
)

// maxMBTilesZoom bounds the TMS row flip; no real tileset goes deeper.
const maxMBTilesZoom = 30

type MBTilesStore struct {
	db     *sql.DB
	logger logger.Logger
}

var _ TileStore = (*MBTilesStore)(nil)

// NewMBTilesStore opens an MBTiles archive read-only.
func NewMBTilesStore(path string, l logger.Logger) (*MBTilesStore, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open mbtiles %s: %w", path, err)
	}

	l.Info("mbtiles store initialized", "path", path)

	return &MBTilesStore{
		db:     db,
		logger: l,
	}, nil
}

func (s *MBTilesStore) ReadTile(ctx context.Context, tile maptile.Tile) ([]byte, bool, error) {
	row, ok := tmsRow(tile)
	if !ok {
		s.logger.Warn("tile not found", "z", tile.Z, "x", tile.X, "y", tile.Y)
		return nil, false, nil
	}

	query := `SELECT tile_data
	FROM tiles
	WHERE zoom_level = ? AND tile_column = ? AND tile_row = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, tile.Z, tile.X, row).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("tile not found", "z", tile.Z, "x", tile.X, "y", tile.Y)
			return nil, false, nil
		}
		s.logger.Error("failed to read tile", "z", tile.Z, "x", tile.X, "y", tile.Y, "error", err)
		return nil, false, fmt.Errorf("read tile %d/%d/%d: %w", tile.Z, tile.X, tile.Y, err)
	}

	s.logger.Info("serving tile", "z", tile.Z, "x", tile.X, "y", tile.Y)

	return data, true, nil
}

func (s *MBTilesStore) Close() error {
	return s.db.Close()
}

// tmsRow converts an XYZ row to the TMS row order MBTiles archives use.
// Coordinates that cannot exist in the scheme report no tile.
func tmsRow(tile maptile.Tile) (int64, bool) {
	if tile.Z > maxMBTilesZoom {
		return 0, false
	}

	rows := int64(1) << tile.Z
	y := int64(tile.Y)
	if y >= rows {
		return 0, false
	}

	return rows - 1 - y, true
}
