package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ca-racing/internal/garage"
)

// Garage tiles in terminal cells. The outer size includes the border.
const (
	tileInnerW = 14
	tileInnerH = 3
	tileMargin = 2
	tileGapX   = 2
	tileGapY   = 1
	tileCols   = 4
)

// garageHeader is everything drawn above the tile grid.
func (m Model) garageHeader() string {
	th := m.theme()
	return m.renderInfo() + "\n\n" + th.Title.Render(m.app.T("title_garage")) + "\n\n"
}

// garageGrid returns the cell grid the garage tiles are drawn on, placed
// directly below the header so mouse coordinates map onto it.
func (m Model) garageGrid() garage.Grid {
	w, h := tileInnerW+2, tileInnerH+2
	return garage.Grid{
		OriginX: tileMargin,
		OriginY: strings.Count(m.garageHeader(), "\n"),
		TileW:   w,
		TileH:   h,
		GapX:    w + tileGapX,
		GapY:    h + tileGapY,
		Cols:    tileCols,
	}
}

// renderGarage draws the owned cars as a grid of tiles. The focused tile
// follows the keyboard cursor; the current car is highlighted.
func (m Model) renderGarage() string {
	th := m.theme()
	s := m.app.Session()
	rec := s.Player()
	tiles := s.GarageTiles(m.garageGrid())

	var b strings.Builder
	b.WriteString(m.garageHeader())

	if len(tiles) == 0 {
		b.WriteString(strings.Repeat(" ", tileMargin))
		b.WriteString(th.Help.Render(m.app.T("lbl_not_owned")))
		b.WriteString("\n")
		return b.String()
	}

	var rows []string
	var row []string
	for i, tile := range tiles {
		style := th.Tile
		switch {
		case i == m.garageCursor:
			style = th.TileFocused
		case tile.CarID == rec.CurrentCar:
			style = th.TileSelected
		}
		row = append(row, style.Width(tileInnerW).Height(tileInnerH).Render(m.tileText(tile.CarID)))

		if len(row) == tileCols || i == len(tiles)-1 {
			rows = append(rows, joinTiles(row))
			row = nil
		}
	}

	gap := strings.Repeat("\n", tileGapY)
	b.WriteString(lipgloss.NewStyle().MarginLeft(tileMargin).Render(strings.Join(rows, "\n"+gap)))
	b.WriteString("\n")
	return b.String()
}

// tileText is the content of one garage tile: name, sprite origin and
// a marker for the current car.
func (m Model) tileText(carID string) string {
	rec := m.app.Session().Player()
	name := truncate(rec.DB().CarName(carID), tileInnerW)

	sprite := "-"
	if r, ok := garage.Locate(carID, garage.SheetCols, garage.SheetRows, garage.SheetWidth, garage.SheetHeight); ok {
		sprite = fmt.Sprintf("@%d,%d", r.X, r.Y)
	}

	marker := ""
	if carID == rec.CurrentCar {
		marker = truncate(m.app.T("lbl_selected"), tileInnerW)
	}
	return name + "\n" + sprite + "\n" + marker
}

// joinTiles joins one row of rendered tiles with the horizontal gap.
func joinTiles(tiles []string) string {
	spacer := strings.Repeat(" ", tileGapX)
	parts := make([]string, 0, len(tiles)*2)
	for i, t := range tiles {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, t)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// moveGarageCursor moves the focused tile by dx columns and dy rows,
// staying inside the owned list.
func (m *Model) moveGarageCursor(dx, dy int) {
	n := len(m.app.Session().Player().Garage)
	if n == 0 {
		return
	}
	next := m.garageCursor + dx + dy*tileCols
	if next >= 0 && next < n {
		m.garageCursor = next
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "."
}
