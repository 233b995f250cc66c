// Package garage contains the index arithmetic behind the garage screen:
// slicing car sprites out of the tile sheet and laying owned cars out as
// clickable tiles.
package garage

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/ca-racing/internal/core"
)

// Layout of the bundled car-tilemap.png: 64px sprites, 6 x 3.
const (
	SheetCols   = 6
	SheetRows   = 3
	SheetWidth  = 384
	SheetHeight = 192
)

// ParseCarID splits an identifier of the form <prefix>_<index>.
func ParseCarID(id string) (prefix string, index int, ok bool) {
	sep := strings.LastIndexByte(id, '_')
	if sep <= 0 || sep == len(id)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[sep+1:])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return id[:sep], n, true
}

// Locate returns the sprite-sheet rectangle for a car identifier on a sheet
// of cols x rows equal tiles. It reports false if the identifier does not
// parse or its index lies outside the sheet.
func Locate(id string, cols, rows, sheetW, sheetH int) (core.Rect, bool) {
	if cols <= 0 || rows <= 0 {
		return core.Rect{}, false
	}
	_, index, ok := ParseCarID(id)
	if !ok || index >= cols*rows {
		return core.Rect{}, false
	}

	tileW := sheetW / cols
	tileH := sheetH / rows
	row := index / cols
	col := index % cols
	return core.NewRect(col*tileW, row*tileH, tileW, tileH), true
}
