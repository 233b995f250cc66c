package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ca-racing/internal/core"
	"github.com/vovakirdan/ca-racing/internal/session"
	"github.com/vovakirdan/ca-racing/internal/storage"
)

// statusSeconds is how long a status message stays on screen.
const statusSeconds = 3

// nameLimit caps the player name entered on the player settings screen.
const nameLimit = 16

// Model is the Bubble Tea model driving the application controller.
type Model struct {
	app    *session.App
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model

	cursor       int
	garageCursor int
	shop         table.Model
	nameInput    textinput.Model

	status      string
	statusError bool
	statusTicks int
	quitArmed   bool
	quitting    bool
}

// NewModel creates the UI model for an application controller.
func NewModel(app *session.App, cfg core.RuntimeConfig) Model {
	ti := textinput.New()
	ti.CharLimit = nameLimit
	ti.Width = nameLimit + 2

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW
	if cfg.TickRate <= 0 {
		cfg.TickRate = app.Settings().FrameCap()
	}

	return Model{
		app:       app,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		shop:      newShopTable(cfg.ScreenH),
		nameInput: ti,
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.frameRate())
}

// frameRate is the tick rate, kept in step with the FPS cap setting.
func (m Model) frameRate() int {
	return m.config.TickRate
}

func (m Model) theme() Theme {
	return ThemeFor(m.app.Settings().Quality)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		rows := m.shop.Rows()
		m.shop = newShopTable(msg.Height)
		m.shop.SetRows(rows)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances the frame clock and expires the status line.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
			m.quitArmed = false
		}
	}
	return m, tickCmd(m.frameRate())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.isQuitKey(msg) {
		m.quitArmed = false
	}
	if m.nameInput.Focused() {
		return m.handleNameInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.saveGame()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		return m.quit()
	}

	switch m.app.Screen() {
	case session.ScreenGame:
		return m.handleGameKey(msg, action)
	case session.ScreenSettings:
		m.handleSettingsKey(action)
	default:
		return m.handleMenuKey(action)
	}
	return m, nil
}

// isQuitKey reports whether msg quits in the current input mode.
func (m Model) isQuitKey(msg tea.KeyMsg) bool {
	if m.nameInput.Focused() {
		return msg.Type == tea.KeyCtrlC
	}
	return key.Matches(msg, m.keys.Quit)
}

// quit saves any open session and stops the program. A failed save keeps
// the program running and arms the quit key: pressing it again while the
// failure is shown leaves without saving.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := m.app.Quit(); err != nil {
		if !m.quitArmed {
			m.setError("msg_save_failed", err)
			m.status += " (" + m.app.T("msg_quit_unsaved") + ")"
			m.quitArmed = true
			return m, nil
		}
		m.app.Abandon()
	}
	m.quitting = true
	return m, tea.Quit
}

// moveCursor moves the menu cursor within n entries, wrapping around.
func (m *Model) moveCursor(action core.Action, n int) {
	switch action {
	case core.ActionUp:
		m.cursor = core.Wrap(m.cursor, -1, n)
	case core.ActionDown:
		m.cursor = core.Wrap(m.cursor, 1, n)
	}
}

// handleMenuKey drives the main menu and the slot picker.
func (m Model) handleMenuKey(action core.Action) (tea.Model, tea.Cmd) {
	items := m.entries()
	m.moveCursor(action, len(items))

	if m.app.Screen() == session.ScreenSlots {
		switch action {
		case core.ActionBack:
			m.app.ReturnToMenu()
			m.cursor = 0
		case core.ActionConfirm:
			m.selectSlot()
		}
		return m, nil
	}

	if action != core.ActionConfirm {
		return m, nil
	}
	switch m.cursor {
	case mainPlay:
		m.app.OpenSlots()
	case mainOptions:
		m.app.OpenSettings()
	case mainExit:
		return m.quit()
	}
	m.cursor = 0
	return m, nil
}

// selectSlot opens the slot under the cursor, or goes back on the last row.
func (m *Model) selectSlot() {
	slots := storage.Slots()
	if m.cursor >= len(slots) {
		m.app.ReturnToMenu()
		m.cursor = 0
		return
	}

	if err := m.app.StartSession(slots[m.cursor]); err != nil {
		m.setError("msg_slot_failed", err)
		return
	}
	m.cursor = 0
	m.garageCursor = 0
}

// handleSettingsKey drives the global settings pages.
func (m *Model) handleSettingsKey(action core.Action) {
	app := m.app
	view := app.SettingsView()
	m.moveCursor(action, len(m.entries()))

	if action == core.ActionBack {
		m.leaveSettingsView()
		return
	}

	var err error
	switch view {
	case session.SettingsMain:
		if action != core.ActionConfirm {
			return
		}
		switch m.cursor {
		case settingsGraphics:
			app.SetSettingsView(session.SettingsGraphics)
		case settingsAudio:
			app.SetSettingsView(session.SettingsAudio)
		case settingsLanguage:
			app.SetSettingsView(session.SettingsLanguage)
		case settingsBack:
			app.ReturnToMenu()
		}
		m.cursor = 0
		return

	case session.SettingsGraphics:
		step := settingStep(action)
		if m.cursor == gfxBack {
			if action == core.ActionConfirm {
				m.leaveSettingsView()
			}
			return
		}
		if step == 0 {
			return
		}
		switch m.cursor {
		case gfxResolution:
			err = app.CycleResolution(step)
		case gfxFullscreen:
			err = app.ToggleFullscreen()
		case gfxFPS:
			err = app.CycleFPS(step)
		case gfxQuality:
			err = app.CycleQuality(step)
		}

	case session.SettingsAudio:
		step := settingStep(action)
		if m.cursor == audioBack {
			if action == core.ActionConfirm {
				m.leaveSettingsView()
			}
			return
		}
		if step == 0 || action == core.ActionConfirm {
			return
		}
		switch m.cursor {
		case audioMusic:
			err = app.AdjustMusicVolume(step * volumeStep)
		case audioSFX:
			err = app.AdjustSFXVolume(step * volumeStep)
		}

	case session.SettingsLanguage:
		if action != core.ActionConfirm {
			return
		}
		options := m.entries()
		if m.cursor == len(options)-1 {
			m.leaveSettingsView()
			return
		}
		err = app.SetLanguage(languageAt(m.cursor))
	}

	m.config.TickRate = app.Settings().FrameCap()
	if err != nil {
		m.setError("msg_save_failed", err)
	}
}

// leaveSettingsView goes up one level in the settings screen.
func (m *Model) leaveSettingsView() {
	if m.app.SettingsView() == session.SettingsMain {
		m.app.ReturnToMenu()
	} else {
		m.app.SetSettingsView(session.SettingsMain)
	}
	m.cursor = 0
}

// settingStep maps left/right/confirm to a cycling direction.
func settingStep(action core.Action) int {
	switch action {
	case core.ActionLeft:
		return -1
	case core.ActionRight, core.ActionConfirm:
		return 1
	}
	return 0
}

// handleGameKey drives the in-game sub-screens.
func (m Model) handleGameKey(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	s := m.app.Session()

	if action == core.ActionBack && s.State() != session.StateHub {
		s.Back()
		m.cursor = 0
		return m, nil
	}

	switch s.State() {
	case session.StateHub:
		m.moveCursor(action, len(m.entries()))
		if action == core.ActionConfirm {
			return m.selectHubEntry()
		}

	case session.StateGarage:
		switch action {
		case core.ActionLeft:
			m.moveGarageCursor(-1, 0)
		case core.ActionRight:
			m.moveGarageCursor(1, 0)
		case core.ActionUp:
			m.moveGarageCursor(0, -1)
		case core.ActionDown:
			m.moveGarageCursor(0, 1)
		case core.ActionConfirm:
			garageIDs := s.Player().Garage
			if m.garageCursor < len(garageIDs) {
				s.SelectCar(garageIDs[m.garageCursor])
			}
		}

	case session.StateShop:
		if action == core.ActionConfirm {
			m.setStatus("msg_coming_soon")
			return m, nil
		}
		var cmd tea.Cmd
		m.shop, cmd = m.shop.Update(msg)
		return m, cmd
	}

	return m, nil
}

// selectHubEntry activates the hub button under the cursor.
func (m Model) selectHubEntry() (tea.Model, tea.Cmd) {
	s := m.app.Session()

	switch m.cursor {
	case hubRace:
		s.SetState(session.StateRace)
	case hubGarage:
		s.SetState(session.StateGarage)
		m.garageCursor = 0
	case hubShop:
		s.SetState(session.StateShop)
		m.refreshShop()
	case hubSettings:
		s.SetState(session.StatePlayerSettings)
		m.nameInput.SetValue(s.Player().Name)
		m.nameInput.CursorEnd()
		cmd := m.nameInput.Focus()
		return m, cmd
	case hubMainMenu:
		if err := m.app.CloseSession(); err != nil {
			m.setError("msg_save_failed", err)
			return m, nil
		}
		m.setStatus("msg_saved")
	}
	m.cursor = 0
	return m, nil
}

// handleNameInput edits the player name. Enter applies it unless blank,
// Esc cancels; both return to the hub.
func (m Model) handleNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.app.Session()

	switch msg.Type {
	case tea.KeyCtrlC:
		m.nameInput.Blur()
		return m.quit()

	case tea.KeyEsc:
		m.nameInput.Blur()
		s.Back()
		return m, nil

	case tea.KeyEnter:
		s.Rename(m.nameInput.Value())
		m.nameInput.Blur()
		s.Back()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleMouse selects garage cars with a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	s := m.app.Session()
	if s == nil || s.State() != session.StateGarage {
		return m, nil
	}

	tiles := s.GarageTiles(m.garageGrid())
	carID, hit, _ := s.ClickGarage(tiles, msg.X, msg.Y)
	if !hit {
		return m, nil
	}
	for i, id := range s.Player().Garage {
		if id == carID {
			m.garageCursor = i
			break
		}
	}
	return m, nil
}

// saveGame writes the open session to its slot without leaving it.
func (m *Model) saveGame() {
	if m.app.Session() == nil {
		return
	}
	if err := m.app.SaveSession(); err != nil {
		m.setError("msg_save_failed", err)
		return
	}
	m.setStatus("msg_saved")
}

func (m *Model) setStatus(key string) {
	m.status = m.app.T(key)
	m.statusError = false
	m.statusTicks = statusSeconds * m.frameRate()
}

func (m *Model) setError(key string, err error) {
	m.status = fmt.Sprintf("%s: %v", m.app.T(key), err)
	m.statusError = true
	m.statusTicks = statusSeconds * m.frameRate()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.app.Screen() {
	case session.ScreenGame:
		body = m.renderGame()
	default:
		body = m.renderMenu(m.title(), m.entries())
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if m.status != "" {
		th := m.theme()
		style := th.Status
		if m.statusError {
			style = th.StatusError
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme().Help.Render(m.help.View(m.keys)))
	return b.String()
}

// renderGame renders the active in-game sub-screen.
func (m Model) renderGame() string {
	s := m.app.Session()
	th := m.theme()
	t := m.app.T

	switch s.State() {
	case session.StateGarage:
		return m.renderGarage()

	case session.StateShop:
		return m.renderShop()

	case session.StateRace:
		return m.renderInfo() + "\n\n" +
			th.Title.Render(t("title_race")) + "\n\n" +
			th.Help.Render(t("msg_coming_soon")) + "\n"

	case session.StatePlayerSettings:
		return m.renderInfo() + "\n\n" +
			th.Title.Render(t("settings_player_title")) + "\n\n" +
			t("label_enter_name") + "\n" +
			m.nameInput.View() + "\n\n" +
			th.Help.Render("enter: "+t("btn_save")+"  esc: "+t("menu_back")) + "\n"
	}

	return m.renderInfo() + "\n" + m.renderMenu(t("title_main"), m.entries())
}

// renderInfo draws the driver info bar shown on every game screen.
func (m Model) renderInfo() string {
	th := m.theme()
	t := m.app.T
	rec := m.app.Session().Player()

	left := fmt.Sprintf("%s: %s   %s: %d   %s: %s",
		t("info_driver"), rec.Name,
		t("info_level"), rec.Level,
		t("info_car"), rec.CurrentCarName())
	right := th.InfoMoney.Render(fmt.Sprintf("$%d", rec.Money))

	gap := m.config.ScreenW - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 2 {
		gap = 2
	}
	return th.InfoBar.Render(" " + left + strings.Repeat(" ", gap) + right)
}

// Run starts the Bubble Tea program for an application controller.
func Run(app *session.App, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(app, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
