package garage

import (
	"testing"

	"github.com/vovakirdan/ca-racing/internal/core"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		cols, rows int
		w, h       int
		expected   core.Rect
		ok         bool
	}{
		{"index 7 on 6x3", "car_7", 6, 3, 600, 300, core.NewRect(100, 100, 100, 100), true},
		{"first tile", "car_0", 6, 3, 600, 300, core.NewRect(0, 0, 100, 100), true},
		{"last tile", "car_17", 6, 3, 600, 300, core.NewRect(500, 200, 100, 100), true},
		{"out of bounds", "car_99", 6, 3, 600, 300, core.Rect{}, false},
		{"just past the end", "car_18", 6, 3, 600, 300, core.Rect{}, false},
		{"no index", "car", 6, 3, 600, 300, core.Rect{}, false},
		{"non-numeric index", "car_x", 6, 3, 600, 300, core.Rect{}, false},
		{"negative index", "car_-1", 6, 3, 600, 300, core.Rect{}, false},
		{"empty prefix", "_3", 6, 3, 600, 300, core.Rect{}, false},
		{"multi-part prefix", "sport_car_2", 6, 3, 600, 300, core.NewRect(200, 0, 100, 100), true},
		{"uneven sheet", "car_1", 6, 3, 640, 200, core.NewRect(106, 0, 106, 66), true},
		{"degenerate grid", "car_0", 0, 3, 600, 300, core.Rect{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Locate(tc.id, tc.cols, tc.rows, tc.w, tc.h)
			if ok != tc.ok {
				t.Fatalf("Locate(%q) ok = %v, expected %v", tc.id, ok, tc.ok)
			}
			if got != tc.expected {
				t.Errorf("Locate(%q) = %v, expected %v", tc.id, got, tc.expected)
			}
		})
	}
}

// testGrid places 160px panels four per row.
var testGrid = Grid{
	OriginX: 150, OriginY: 180,
	TileW: 160, TileH: 160,
	GapX: 220, GapY: 200,
	Cols: 4,
}

func TestLayoutAndHitTest(t *testing.T) {
	g := testGrid
	ids := []string{"car_0", "car_1", "car_2", "car_3", "car_4"}
	tiles := Layout(ids, g)

	if len(tiles) != len(ids) {
		t.Fatalf("Layout() returned %d tiles, expected %d", len(tiles), len(ids))
	}

	// Fifth car wraps to the second row.
	if tiles[4].Rect != core.NewRect(150, 380, 160, 160) {
		t.Errorf("tiles[4].Rect = %v, expected second row origin", tiles[4].Rect)
	}
	if tiles[3].Rect.X != 150+3*220 {
		t.Errorf("tiles[3].Rect.X = %d, expected %d", tiles[3].Rect.X, 150+3*220)
	}

	if id, ok := HitTest(tiles, 380, 200); !ok || id != "car_1" {
		t.Errorf("HitTest(380, 200) = %q, %v, expected car_1", id, ok)
	}
	// Gap between the first two tiles.
	if _, ok := HitTest(tiles, 320, 200); ok {
		t.Error("HitTest() in the gap between tiles should miss")
	}
}
