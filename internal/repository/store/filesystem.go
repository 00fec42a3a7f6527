package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/VinciYan/tileserv/pkg/logger"
	"github.com/paulmach/orb/maptile"
)

type FilesystemStore struct {
	root   string
	logger logger.Logger
}

var _ TileStore = (*FilesystemStore)(nil)

func NewFilesystemStore(root string, l logger.Logger) *FilesystemStore {
	return &FilesystemStore{
		root:   root,
		logger: l,
	}
}

// TilePath maps a tile to {root}/{z}/{x}/{y}.png, always with forward
// slashes regardless of the host OS.
func (s *FilesystemStore) TilePath(tile maptile.Tile) string {
	return path.Join(s.root, fmt.Sprintf("%d", tile.Z), fmt.Sprintf("%d", tile.X), fmt.Sprintf("%d.png", tile.Y))
}

func (s *FilesystemStore) ReadTile(ctx context.Context, tile maptile.Tile) ([]byte, bool, error) {
	tilePath := s.TilePath(tile)

	file, err := os.Open(tilePath)
	if err != nil {
		// Anything that keeps the file from opening counts as a missing
		// tile, permission errors included.
		s.logger.Warn("tile not found", "path", tilePath, "error", err)
		return nil, false, nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("failed to read tile", "path", tilePath, "error", err)
		return nil, false, fmt.Errorf("read tile %s: %w", tilePath, err)
	}

	s.logger.Info("serving tile", "path", tilePath)

	return data, true, nil
}
