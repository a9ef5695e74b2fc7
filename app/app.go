package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/config"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/document"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/keys"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/log"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/session"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/tableparser"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/ui"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/ui/overlay"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, path string, tableIndex int) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		newHome(ctx, doc, tableIndex),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse scroll
	)
	_, err = p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateEdit is the state when the cell editor overlay is open.
	stateEdit
	// stateHelp is the state when a help screen is displayed.
	stateHelp
	// stateConfirm is the state when a confirmation modal is displayed.
	stateConfirm
)

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// doc is the Markdown file being edited
	doc *document.Document
	// appConfig stores persistent application configuration
	appConfig *config.Config

	// -- State --

	// state is the current discrete state of the application
	state state
	// tables are the pipe-tables found in doc, in document order
	tables []tableparser.Table
	// tableIndex selects the table currently shown in the grid
	tableIndex int
	// sessions holds one editing session per visited table, so edits
	// survive switching between tables before a save
	sessions map[int]*session.Session
	// quitAfterConfirm marks that the pending confirmation quits the app
	quitAfterConfirm bool

	// -- UI Components --

	// tabbedWindow displays the grid and markdown panes
	tabbedWindow *ui.TabbedWindow
	// gridPane is the spreadsheet view inside the tabbed window
	gridPane *ui.GridPane
	// previewPane is the rendered-markdown view inside the tabbed window
	previewPane *ui.PreviewPane
	// menu displays the bottom menu
	menu *ui.Menu
	// errBox displays error messages
	errBox *ui.ErrBox
	// textInputOverlay handles cell editing input
	textInputOverlay *overlay.TextInputOverlay
	// textOverlay displays the help screen
	textOverlay *overlay.TextOverlay
	// confirmationOverlay displays confirmation modals
	confirmationOverlay *overlay.ConfirmationOverlay

	width  int
	height int
}

func newHome(ctx context.Context, doc *document.Document, tableIndex int) *home {
	appConfig := config.LoadConfig()

	// Initialize custom keybindings
	if err := keys.InitializeCustomKeyBindings(); err != nil {
		// Log error but continue with defaults
		log.ErrorLog.Printf("Failed to load custom keybindings: %v", err)
	}

	grid := ui.NewGridPane()
	preview := ui.NewPreviewPane()

	h := &home{
		ctx:          ctx,
		doc:          doc,
		appConfig:    appConfig,
		state:        stateDefault,
		sessions:     make(map[int]*session.Session),
		gridPane:     grid,
		previewPane:  preview,
		tabbedWindow: ui.NewTabbedWindow(grid, preview),
		menu:         ui.NewMenu(),
		errBox:       ui.NewErrBox(),
	}

	h.tables = doc.Tables()
	h.openTable(tableIndex)
	return h
}

// openTable selects the table at index, creating its editing session
// on first visit. Out-of-range indexes clamp; a document with no
// tables leaves the grid empty.
func (m *home) openTable(index int) {
	if len(m.tables) == 0 {
		m.tableIndex = 0
		m.gridPane.SetSession(nil)
		m.previewPane.SetContent("")
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(m.tables) {
		index = len(m.tables) - 1
	}
	m.tableIndex = index

	s, ok := m.sessions[index]
	if !ok {
		s = session.New(m.tables[index], m.appConfig.UndoLimit)
		m.sessions[index] = s
	}
	m.gridPane.SetSession(s)
	m.refreshPreview()
}

// currentSession returns the session for the selected table, or nil
// when the document has no tables.
func (m *home) currentSession() *session.Session {
	if len(m.tables) == 0 {
		return nil
	}
	return m.sessions[m.tableIndex]
}

// refreshPreview re-renders the markdown pane from the working grid.
func (m *home) refreshPreview() {
	s := m.currentSession()
	if s == nil {
		m.previewPane.SetContent("")
		return
	}
	m.previewPane.SetContent(s.Serialize(m.appConfig.PaddingMode))
}

// anyModified reports whether any table has unsaved edits.
func (m *home) anyModified() bool {
	for _, s := range m.sessions {
		if s.Modified() {
			return true
		}
	}
	return false
}

// save serializes every modified table and writes the document back.
// Tables are replaced bottom-up so earlier line ranges stay valid
// while later spans change length.
func (m *home) save() error {
	for i := len(m.tables) - 1; i >= 0; i-- {
		s, ok := m.sessions[i]
		if !ok || !s.Modified() {
			continue
		}
		t := s.Table()
		if err := m.doc.ReplaceRange(t.StartLine, t.EndLine, s.Serialize(m.appConfig.PaddingMode)); err != nil {
			return fmt.Errorf("failed to replace table %d: %w", i+1, err)
		}
	}
	if err := m.doc.Save(); err != nil {
		return err
	}
	m.reload()
	return nil
}

// reformatCurrent rewrites the selected table with canonical padding
// and saves the document.
func (m *home) reformatCurrent() error {
	s := m.currentSession()
	if s == nil {
		return fmt.Errorf("no table to reformat")
	}
	t := s.Table()
	if err := m.doc.ReplaceRange(t.StartLine, t.EndLine, tableparser.ToMarkdown(s.Data)); err != nil {
		return fmt.Errorf("failed to reformat table: %w", err)
	}
	if err := m.doc.Save(); err != nil {
		return err
	}
	m.reload()
	return nil
}

// reload rescans the document after a save. Line ranges may have
// shifted, so sessions are rebuilt from the fresh scan; the cursor
// position carries over where it still fits.
func (m *home) reload() {
	var row, col int
	if s := m.currentSession(); s != nil {
		row, col = s.Row, s.Col
	}

	m.tables = m.doc.Tables()
	m.sessions = make(map[int]*session.Session)
	m.openTable(m.tableIndex)

	if s := m.currentSession(); s != nil {
		s.Row, s.Col = 0, 0
		s.MoveCursor(row, col)
	}
}

func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	// Menu takes 10% of height; one row goes to the error box.
	contentHeight := int(float32(msg.Height) * 0.9)
	menuHeight := msg.Height - contentHeight - 1
	m.errBox.SetSize(int(float32(msg.Width)*0.9), 1)

	m.tabbedWindow.SetSize(msg.Width, contentHeight)
	m.menu.SetSize(msg.Width, menuHeight)

	if m.textInputOverlay != nil {
		m.textInputOverlay.SetSize(int(float32(msg.Width)*0.6), int(float32(msg.Height)*0.4))
	}
	if m.textOverlay != nil {
		m.textOverlay.SetSize(int(float32(msg.Width)*0.8), int(float32(msg.Height)*0.8))
	}
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.MouseMsg:
		if m.state == stateDefault && m.tabbedWindow.ActiveTab() == ui.MarkdownTab {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.previewPane.ScrollUp()
			case tea.MouseButtonWheelDown:
				m.previewPane.ScrollDown()
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keypress clears a stale error.
	m.errBox.Clear()

	switch m.state {
	case stateHelp:
		if m.textOverlay.HandleKeyPress(msg) {
			m.textOverlay = nil
			m.state = stateDefault
		}
		return m, nil
	case stateConfirm:
		if m.confirmationOverlay.HandleKeyPress(msg) {
			confirmed := m.confirmationOverlay.IsConfirmed()
			m.confirmationOverlay = nil
			m.state = stateDefault
			if confirmed && m.quitAfterConfirm {
				return m, tea.Quit
			}
		}
		return m, nil
	case stateEdit:
		if m.textInputOverlay.HandleKeyPress(msg) {
			if m.textInputOverlay.IsSubmitted() {
				if s := m.currentSession(); s != nil {
					s.SetCell(s.Row, s.Col, m.textInputOverlay.GetValue())
					m.refreshPreview()
				}
			}
			m.textInputOverlay = nil
			m.state = stateDefault
			m.menu.SetState(false)
		}
		return m, nil
	}

	return m.handleDefaultKey(msg)
}

func (m *home) handleDefaultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GetKeyName(msg.String())
	if !ok {
		return m, nil
	}

	s := m.currentSession()

	// Keys that need no session.
	switch name {
	case keys.KeyQuit:
		if m.appConfig.ConfirmOnQuit && (m.anyModified() || m.doc.Modified()) {
			m.quitAfterConfirm = true
			m.confirmationOverlay = overlay.NewConfirmationOverlay("Quit without saving changes?")
			m.confirmationOverlay.SetWidth(50)
			m.state = stateConfirm
			return m, nil
		}
		return m, tea.Quit
	case keys.KeyHelp:
		m.textOverlay = overlay.NewTextOverlay(helpContent())
		m.textOverlay.SetSize(int(float32(m.width)*0.8), int(float32(m.height)*0.8))
		m.state = stateHelp
		return m, nil
	case keys.KeyTab:
		m.tabbedWindow.Toggle()
		return m, nil
	case keys.KeyNextTable:
		m.openTable(m.tableIndex + 1)
		return m, nil
	case keys.KeyPrevTable:
		m.openTable(m.tableIndex - 1)
		return m, nil
	}

	if s == nil {
		return m, nil
	}

	// Scroll the markdown pane instead of the grid when it is active.
	if m.tabbedWindow.ActiveTab() == ui.MarkdownTab {
		switch name {
		case keys.KeyUp:
			m.previewPane.ScrollUp()
			return m, nil
		case keys.KeyDown:
			m.previewPane.ScrollDown()
			return m, nil
		}
	}

	var err error
	switch name {
	case keys.KeyUp:
		s.MoveCursor(-1, 0)
	case keys.KeyDown:
		s.MoveCursor(1, 0)
	case keys.KeyLeft:
		s.MoveCursor(0, -1)
	case keys.KeyRight:
		s.MoveCursor(0, 1)
	case keys.KeyRowStart:
		s.CursorHome()
	case keys.KeyRowEnd:
		s.CursorEnd()
	case keys.KeyEdit:
		m.textInputOverlay = overlay.NewTextInputOverlay("Edit cell", s.Cell(s.Row, s.Col))
		m.textInputOverlay.SetSize(int(float32(m.width)*0.6), int(float32(m.height)*0.4))
		m.state = stateEdit
		m.menu.SetState(true)
	case keys.KeyClear:
		s.ClearCell()
	case keys.KeyInsertRow:
		s.InsertRowBelow()
	case keys.KeyInsertRowAbove:
		s.InsertRowAbove()
	case keys.KeyDeleteRow:
		err = s.DeleteRow()
	case keys.KeyInsertCol:
		s.InsertColumn()
	case keys.KeyDeleteCol:
		err = s.DeleteColumn()
	case keys.KeyUndo:
		s.Undo()
	case keys.KeyRedo:
		s.Redo()
	case keys.KeyCopy:
		err = s.CopyCell()
	case keys.KeyPaste:
		err = s.Paste()
	case keys.KeySave:
		err = m.save()
	case keys.KeyReformat:
		err = m.reformatCurrent()
	default:
		return m, nil
	}

	if err != nil {
		log.ErrorLog.Printf("%v", err)
		m.errBox.SetError(err)
	} else {
		m.refreshPreview()
	}
	return m, nil
}

func (m *home) View() string {
	mainView := lipgloss.JoinVertical(
		lipgloss.Center,
		m.tabbedWindow.String(),
		m.menu.String(),
		m.errBox.String(),
	)

	switch m.state {
	case stateEdit:
		if m.textInputOverlay != nil {
			return overlay.PlaceOverlay(0, 0, m.textInputOverlay.Render(), mainView, true, true)
		}
	case stateHelp:
		if m.textOverlay != nil {
			return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true, true)
		}
	case stateConfirm:
		if m.confirmationOverlay != nil {
			return overlay.PlaceOverlay(0, 0, m.confirmationOverlay.Render(), mainView, true, true)
		}
	}
	return mainView
}
