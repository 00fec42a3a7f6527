package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/VinciYan/tileserv/internal/repository/store"
	"github.com/VinciYan/tileserv/pkg/logger"
	"github.com/VinciYan/tileserv/pkg/metrics"
	"github.com/paulmach/orb/maptile"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	data  []byte
	found bool
	err   error
	calls int
}

var _ store.TileStore = (*stubStore)(nil)

func (s *stubStore) ReadTile(_ context.Context, _ maptile.Tile) ([]byte, bool, error) {
	s.calls++
	return s.data, s.found, s.err
}

func TestGetTile(t *testing.T) {
	want := []byte("tile bytes")
	st := &stubStore{data: want, found: true}
	uc := NewTileUseCase(st, logger.NewNop())

	served := testutil.ToFloat64(metrics.TilesServed)

	data, found, err := uc.GetTile(context.Background(), maptile.New(1, 2, 3))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, data)
	assert.Equal(t, 1, st.calls)
	assert.Equal(t, served+1, testutil.ToFloat64(metrics.TilesServed))
}

func TestGetTileMissing(t *testing.T) {
	st := &stubStore{}
	uc := NewTileUseCase(st, logger.NewNop())

	notFound := testutil.ToFloat64(metrics.TilesNotFound)

	data, found, err := uc.GetTile(context.Background(), maptile.New(1, 2, 3))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
	assert.Equal(t, notFound+1, testutil.ToFloat64(metrics.TilesNotFound))
}

func TestGetTileReadError(t *testing.T) {
	readErr := errors.New("disk exploded")
	st := &stubStore{err: readErr}
	uc := NewTileUseCase(st, logger.NewNop())

	readErrors := testutil.ToFloat64(metrics.TileReadErrors)

	data, found, err := uc.GetTile(context.Background(), maptile.New(1, 2, 3))
	assert.ErrorIs(t, err, readErr)
	assert.False(t, found)
	assert.Nil(t, data)
	assert.Equal(t, readErrors+1, testutil.ToFloat64(metrics.TileReadErrors))
}
