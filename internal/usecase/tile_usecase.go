package usecase

import (
	"context"

	"github.com/VinciYan/tileserv/internal/repository/store"
	"github.com/VinciYan/tileserv/pkg/logger"
	"github.com/VinciYan/tileserv/pkg/metrics"
	"github.com/paulmach/orb/maptile"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type TileUseCase struct {
	store  store.TileStore
	logger logger.Logger
}

func NewTileUseCase(store store.TileStore, logger logger.Logger) *TileUseCase {
	return &TileUseCase{
		store:  store,
		logger: logger,
	}
}

// GetTile reads a tile from the configured store. The triple mirrors the
// store contract: found reports whether the tile exists, err reports a
// failure while reading a tile that does exist.
func (uc *TileUseCase) GetTile(ctx context.Context, tile maptile.Tile) ([]byte, bool, error) {
	metrics.TileRequests.Inc()
	uc.logger.Debug("tile requested", "z", tile.Z, "x", tile.X, "y", tile.Y)

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int64("tile.z", int64(tile.Z)),
			attribute.Int64("tile.x", int64(tile.X)),
			attribute.Int64("tile.y", int64(tile.Y)),
		)
	}

	data, found, err := uc.store.ReadTile(ctx, tile)
	if err != nil {
		metrics.TileReadErrors.Inc()
		return nil, false, err
	}
	if !found {
		metrics.TilesNotFound.Inc()
		return nil, false, nil
	}

	metrics.TilesServed.Inc()
	metrics.TileBytes.Observe(float64(len(data)))

	return data, true, nil
}
