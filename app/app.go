package app

import (
	"context"
	"encoding/json"
	"fmt"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/config"
	"reactive-breakpoints/inspect"
	"reactive-breakpoints/keys"
	"reactive-breakpoints/log"
	"reactive-breakpoints/reactive"
	"reactive-breakpoints/ui"
	"reactive-breakpoints/ui/layout"
	"reactive-breakpoints/ui/overlay"
	"reactive-breakpoints/viewport"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	h := newHome(ctx, cfg)
	defer h.close()

	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when the help overlay is displayed.
	stateHelp
)

type home struct {
	ctx context.Context

	appConfig *config.Config

	// -- Breakpoints --

	// measurer holds the latest terminal size reported by bubbletea
	measurer *viewport.Static
	// bp is the engine, observer and resize driver for the terminal
	bp *reactive.Breakpoints
	// sized is set once the first window size has been applied
	sized bool

	// Observer deliveries arrive on whatever goroutine ran the update. They
	// queue here and are applied in Update.
	mu        sync.Mutex
	queue     []ui.Change
	delivered breakpoint.State
	wake      chan struct{}

	// -- State --

	state       state
	current     breakpoint.State
	constraints layout.Constraints
	degradation layout.Degradation
	// ticking is set while the spinner is animating a pending resize
	ticking bool

	// -- UI Components --

	header     *ui.Header
	statePanel *ui.StatePanel
	ruler      *ui.Ruler
	list       *ui.List
	menu       *ui.Menu
	errBox     *ui.ErrBox
	spinner    spinner.Model

	helpOverlay    *overlay.HelpOverlay
	loadingOverlay *overlay.LoadingOverlay
}

func newHome(ctx context.Context, cfg *config.Config) *home {
	thresholds := cfg.TerminalThresholds
	measurer := viewport.NewStatic()

	h := &home{
		ctx:        ctx,
		appConfig:  cfg,
		measurer:   measurer,
		bp:         reactive.Use(&thresholds, measurer, reactive.WithDelay(cfg.ResizeDelay())),
		wake:       make(chan struct{}, 1),
		header:     ui.NewHeader(),
		statePanel: ui.NewStatePanel(),
		ruler:      ui.NewRuler(thresholds),
		list:       ui.NewList(),
		menu:       ui.NewMenu(),
		errBox:     ui.NewErrBox(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	h.loadingOverlay = overlay.NewLoadingOverlay("Resizing", &h.spinner)
	h.delivered = h.bp.State()
	h.bp.WatchFunc(h.onBreakpoint)
	// No size is known yet, so this only starts accepting resize events.
	h.bp.Mount()
	h.syncState()

	return h
}

// onBreakpoint is the observer handler. It may run on the resize driver's
// timer goroutine.
func (m *home) onBreakpoint(s breakpoint.State) {
	m.mu.Lock()
	m.queue = append(m.queue, ui.Change{At: time.Now(), From: m.delivered, To: s})
	m.delivered = s
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// listenForChanges waits for the next delivery. Exactly one listener is
// outstanding at a time; each changesMsg starts the next.
func (m *home) listenForChanges() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case <-m.wake:
			return changesMsg{}
		}
	}
}

// drainChanges moves queued deliveries into the change log.
func (m *home) drainChanges() int {
	m.mu.Lock()
	queue := m.queue
	m.queue = nil
	m.mu.Unlock()

	for _, c := range queue {
		log.Debug("change %s -> %s (%vx%v)", c.From.Name, c.To.Name, c.To.Width, c.To.Height)
		m.list.Add(c)
	}
	return len(queue)
}

// syncState copies the engine state into the components.
func (m *home) syncState() {
	m.current = m.bp.State()
	m.statePanel.SetState(m.current)
	m.ruler.SetState(m.current)
	m.header.SetState(m.current, m.constraints.Mode)

	watching := m.bp.Observer().IsWatching()
	m.header.SetWatching(watching)
	m.list.SetPaused(!watching)
	m.menu.SetPaused(!watching)
}

// updateHandleWindowSizeEvent lays the components out for the new size at
// once. The breakpoint itself follows after the resize delay, except for the
// very first size which is applied immediately.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) tea.Cmd {
	width, height := float64(msg.Width), float64(msg.Height)
	m.measurer.Set(width, height)

	s := breakpoint.Derive(breakpoint.NameFromWidth(m.appConfig.TerminalThresholds, width), width, height)
	m.constraints = layout.ComputeConstraints(s)
	m.degradation = layout.ComputeDegradation(m.constraints, s)
	m.applyLayout()

	if !m.sized {
		m.sized = true
		m.bp.Driver().Refresh()
		return nil
	}

	m.bp.OnResize()
	m.loadingOverlay.SetStatus(fmt.Sprintf("%dx%d", msg.Width, msg.Height))
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.spinner.Tick
}

func (m *home) applyLayout() {
	c, d := m.constraints, m.degradation

	m.header.SetWidth(c.TerminalWidth)
	m.header.SetMinWarning(d.ShowMinWarning)

	m.statePanel.SetSize(c.StateWidth, c.StateHeight)
	m.statePanel.SetShowRelational(d.ShouldShowRelational())

	if d.ShouldShowLog() {
		m.list.SetSize(c.LogWidth, c.LogHeight)
	} else {
		m.list.SetSize(0, 0)
	}

	if d.ShouldShowRuler() {
		m.ruler.SetWidth(c.RulerWidth)
	} else {
		m.ruler.SetWidth(0)
	}

	m.menu.SetSize(c.TerminalWidth, c.HelpHeight)
	m.errBox.SetSize(c.TerminalWidth, c.HelpHeight)
	m.loadingOverlay.SetWidth(min(30, max(c.TerminalWidth-4, 0)))
	if m.helpOverlay != nil {
		m.helpOverlay.SetWidth(min(60, max(c.TerminalWidth-4, 0)))
	}
}

func (m *home) Init() tea.Cmd {
	return m.listenForChanges()
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handleMsg(msg)

	if m.drainChanges() > 0 {
		m.syncState()
		m.writeSnapshot()
	} else {
		m.syncState()
	}
	return m, cmd
}

func (m *home) handleMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case changesMsg:
		return m.listenForChanges()
	case hideErrMsg:
		m.errBox.Clear()
	case keyupMsg:
		m.menu.ClearKeydown()
	case spinner.TickMsg:
		if !m.bp.Driver().Pending() {
			m.ticking = false
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.WindowSizeMsg:
		cmd := m.updateHandleWindowSizeEvent(msg)
		m.writeSnapshot()
		return cmd
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if m.state == stateHelp {
		if m.helpOverlay.HandleKeyPress(msg) {
			m.state = stateDefault
			m.helpOverlay = nil
		}
		return nil
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	log.Debug("key %q", msg.String())

	switch name {
	case keys.KeyQuit:
		m.close()
		return tea.Quit
	case keys.KeyPause, keys.KeyResume:
		if m.bp.Observer().IsWatching() {
			m.bp.Observer().Pause()
			name = keys.KeyPause
		} else {
			// The log picks up from what is on screen, not from the last
			// state delivered before the pause.
			m.mu.Lock()
			m.delivered = m.bp.State()
			m.mu.Unlock()
			m.bp.Observer().Resume()
			name = keys.KeyResume
		}
	case keys.KeyRefresh:
		if !m.bp.Driver().Refresh() {
			return m.handleError(fmt.Errorf("no terminal size yet"))
		}
	case keys.KeyCopy:
		if err := m.copyState(); err != nil {
			return tea.Batch(m.keydownCallback(name), m.handleError(err))
		}
		return tea.Batch(m.keydownCallback(name), m.showInfo("copied state to clipboard"))
	case keys.KeyClear:
		m.list.Clear()
	case keys.KeyHelp:
		m.state = stateHelp
		m.helpOverlay = overlay.NewHelpOverlay()
		m.helpOverlay.SetWidth(min(60, max(m.constraints.TerminalWidth-4, 0)))
		return nil
	}

	return m.keydownCallback(name)
}

func (m *home) copyState() error {
	data, err := json.MarshalIndent(m.current, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := copyToClipboard(string(data)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// keydownCallback highlights the pressed key in the menu for a moment.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return m.hideErrAfter(3 * time.Second)
}

func (m *home) showInfo(msg string) tea.Cmd {
	log.InfoLog.Print(msg)
	m.errBox.SetInfo(msg)
	return m.hideErrAfter(2 * time.Second)
}

func (m *home) hideErrAfter(d time.Duration) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(d):
		}

		return hideErrMsg{}
	}
}

// snapshot describes what is on screen.
func (m *home) snapshot() *inspect.Snapshot {
	appState := inspect.AppStateInfo{
		Watching:     m.bp.Observer().IsWatching(),
		Handlers:     m.bp.Observer().HandlersCount(),
		HasOverlay:   m.state == stateHelp,
		ChangeCount:  m.list.Len(),
		ErrorMessage: m.errBox.Message(),
	}
	if m.state == stateHelp {
		appState.OverlayType = "help"
	}

	return inspect.NewSnapshot().
		WithTerminal(m.constraints.TerminalWidth, m.constraints.TerminalHeight).
		WithAppState(appState).
		WithState(m.current, m.bp.Engine().Thresholds()).
		WithLayout(m.constraints, m.degradation).
		WithComponents(inspect.Tree(m.statePanel, m.ruler, m.list))
}

func (m *home) writeSnapshot() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
		log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
	}
}

func (m *home) close() {
	if log.DebugEnabled {
		log.Debug("final %s", m.snapshot().ToText())
		log.GetProfiler().LogStats()
	}
	m.bp.Close()
}

func (m *home) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	if !m.sized {
		return ""
	}

	body := m.statePanel.String()
	if m.degradation.ShouldShowLog() {
		if m.constraints.UseVerticalStack {
			body = lipgloss.JoinVertical(lipgloss.Left, body, m.list.String())
		} else {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.list.String())
		}
	}

	parts := []string{m.header.String()}
	if body != "" {
		parts = append(parts, body)
	}
	if m.degradation.ShouldShowRuler() {
		parts = append(parts, m.ruler.String())
	}
	if m.constraints.HelpHeight > 0 {
		if m.errBox.Message() != "" {
			parts = append(parts, m.errBox.String())
		} else {
			parts = append(parts, m.menu.String())
		}
	}
	mainView := strings.Join(parts, "\n")

	switch {
	case m.state == stateHelp && m.helpOverlay != nil:
		return overlay.PlaceOverlay(0, 0, m.helpOverlay.Render(), mainView, true, true)
	case m.bp.Driver().Pending():
		return overlay.PlaceOverlay(0, 0, m.loadingOverlay.Render(), mainView, false, true)
	}
	return mainView
}

type changesMsg struct{}

type keyupMsg struct{}

type hideErrMsg struct{}
