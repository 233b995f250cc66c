package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ca-racing/internal/gamedb"
	"github.com/vovakirdan/ca-racing/internal/player"
)

// Shop layout constants
const (
	shopNameWidth  = 22
	shopPriceWidth = 10
	shopStateWidth = 14
	shopMinHeight  = 5
)

// newShopTable creates the car catalogue table.
func newShopTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Car", Width: shopNameWidth},
		{Title: "Price", Width: shopPriceWidth},
		{Title: "", Width: shopStateWidth},
	}

	// Leave room for info bar, title, help and status.
	h := height - 10
	if h < shopMinHeight {
		h = shopMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// shopRows lists every car in the database with its ownership state.
func shopRows(db *gamedb.Database, rec *player.Record, selected, notOwned string) []table.Row {
	ids := db.CarIDs()
	rows := make([]table.Row, 0, len(ids))
	for _, id := range ids {
		car, _ := db.Car(id)
		state := notOwned
		switch {
		case id == rec.CurrentCar:
			state = selected
		case rec.Owns(id):
			state = "✓"
		}
		rows = append(rows, table.Row{db.CarName(id), fmt.Sprintf("$%d", car.Price), state})
	}
	return rows
}

// refreshShop reloads the catalogue rows for the open session.
func (m *Model) refreshShop() {
	s := m.app.Session()
	if s == nil {
		return
	}
	m.shop.SetRows(shopRows(m.app.DB(), s.Player(), m.app.T("lbl_selected"), m.app.T("lbl_not_owned")))
	m.shop.GotoTop()
}

// renderShop renders the catalogue or an empty message.
func (m Model) renderShop() string {
	th := m.theme()
	var b strings.Builder

	b.WriteString(m.renderInfo())
	b.WriteString("\n\n")
	b.WriteString(th.Title.Render(m.app.T("title_shop")))
	b.WriteString("\n\n")

	if len(m.shop.Rows()) == 0 {
		b.WriteString(th.Help.Italic(true).Render(m.app.T("msg_coming_soon")))
		b.WriteString("\n")
		return b.String()
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(box.Render(m.shop.View()))
	b.WriteString("\n")
	return b.String()
}
