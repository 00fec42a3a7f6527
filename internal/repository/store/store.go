package store

import (
	"context"

	"github.com/paulmach/orb/maptile"
)

// TileStore reads raster tiles addressed by slippy map coordinates.
//
// ReadTile returns (data, true, nil) when the tile exists, (nil, false, nil)
// when it cannot be located, and (nil, false, err) when it was located but
// reading it failed.
type TileStore interface {
	ReadTile(ctx context.Context, tile maptile.Tile) ([]byte, bool, error)
}
