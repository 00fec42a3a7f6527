package store

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/VinciYan/tileserv/pkg/logger"
	"github.com/paulmach/orb/maptile"
)

const (
	benchTileCount = 256
	benchTileSize  = 10 * 1024 // 10KB
)

func generateTileData(size int) []byte {
	data := make([]byte, size)
	rand.Read(data)
	return data
}

func benchCoords() []maptile.Tile {
	coords := make([]maptile.Tile, 0, benchTileCount)
	for i := 0; i < benchTileCount; i++ {
		coords = append(coords, maptile.New(uint32(i%16), uint32(i/16), 10))
	}
	return coords
}

func setupFilesystemStore(b *testing.B) (*FilesystemStore, []maptile.Tile) {
	b.Helper()

	root := b.TempDir()
	coords := benchCoords()
	for _, tile := range coords {
		dir := filepath.Join(root, "10", fmt.Sprintf("%d", tile.X))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.Fatalf("Failed to create tile directory: %v", err)
		}
		name := filepath.Join(dir, fmt.Sprintf("%d.png", tile.Y))
		if err := os.WriteFile(name, generateTileData(benchTileSize), 0o644); err != nil {
			b.Fatalf("Failed to write tile: %v", err)
		}
	}

	return NewFilesystemStore(root, logger.NewNop()), coords
}

func setupMBTilesStore(b *testing.B) (*MBTilesStore, []maptile.Tile) {
	b.Helper()

	coords := benchCoords()
	tiles := make([]testTile, 0, len(coords))
	for _, tile := range coords {
		tiles = append(tiles, testTile{
			z:    uint32(tile.Z),
			x:    tile.X,
			y:    tile.Y,
			data: generateTileData(benchTileSize),
		})
	}

	s, err := NewMBTilesStore(newTestMBTiles(b, tiles), logger.NewNop())
	if err != nil {
		b.Fatalf("Failed to open mbtiles store: %v", err)
	}
	b.Cleanup(func() { s.Close() })

	return s, coords
}

func BenchmarkFilesystemStoreReadTile(b *testing.B) {
	s, coords := setupFilesystemStore(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tile := coords[i%len(coords)]
		if _, found, err := s.ReadTile(ctx, tile); err != nil || !found {
			b.Fatalf("ReadTile(%v) = found %v, err %v", tile, found, err)
		}
	}
}

func BenchmarkMBTilesStoreReadTile(b *testing.B) {
	s, coords := setupMBTilesStore(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tile := coords[i%len(coords)]
		if _, found, err := s.ReadTile(ctx, tile); err != nil || !found {
			b.Fatalf("ReadTile(%v) = found %v, err %v", tile, found, err)
		}
	}
}
