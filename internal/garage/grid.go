package garage

import "github.com/vovakirdan/ca-racing/internal/core"

// Grid describes where garage tiles are placed on screen.
type Grid struct {
	OriginX, OriginY int // Top-left of the first tile
	TileW, TileH     int
	GapX, GapY       int // Distance between tile origins
	Cols             int // Tiles per row
}

// Tile is one clickable garage slot.
type Tile struct {
	Rect  core.Rect
	CarID string
}

// Layout places one tile per car in garage order, filling rows left to right.
func Layout(carIDs []string, g Grid) []Tile {
	cols := g.Cols
	if cols <= 0 {
		cols = 1
	}
	tiles := make([]Tile, 0, len(carIDs))
	for i, id := range carIDs {
		row := i / cols
		col := i % cols
		tiles = append(tiles, Tile{
			Rect:  core.NewRect(g.OriginX+col*g.GapX, g.OriginY+row*g.GapY, g.TileW, g.TileH),
			CarID: id,
		})
	}
	return tiles
}

// HitTest returns the car under the point (x, y), if any.
func HitTest(tiles []Tile, x, y int) (string, bool) {
	for _, t := range tiles {
		if t.Rect.Contains(x, y) {
			return t.CarID, true
		}
	}
	return "", false
}
