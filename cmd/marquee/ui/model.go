package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"marquee/internal/config"
	"marquee/internal/marquee"
	"marquee/internal/sched"
	"marquee/internal/stage"
	"marquee/internal/tween"
)

// frameMsg drives one engine frame.
type frameMsg time.Time

// ReloadMsg carries a re-parsed configuration from the file watcher.
type ReloadMsg struct {
	Cfg *config.Config
}

// progressStep is the scroll-progress increment per wheel notch or arrow key.
const progressStep = 0.05

// bandPadding is the horizontal space the band border and margins consume.
const bandPadding = 4

// Model hosts one marquee inside a bubbletea program. Every engine frame is
// flushed from the animation tick, so all engine state stays on the
// program's event loop.
type Model struct {
	cfg    *config.Config
	log    *zap.Logger
	styles Styles
	keys   keyMap
	help   help.Model

	band      *stage.Band
	scheduler *sched.Manual
	tweens    *tween.Runner
	mq        *marquee.Marquee

	interval time.Duration
	width    int
	height   int
	hovering bool
	progress float64
}

// New builds the model and its engine. The marquee lays out against a
// zero-width band until the first WindowSizeMsg arrives.
func New(cfg *config.Config, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		cfg:       cfg,
		log:       logger.Named("ui"),
		styles:    DefaultStyles(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		scheduler: sched.NewManual(),
		interval:  frameInterval(cfg.UI.FPS),
	}
	m.tweens = tween.NewRunner(m.scheduler, m.interval)
	m.band = stage.NewBand(cfg.UI.Chip, m.styles.Chip, cfg.UI.Markers...)
	m.mq = marquee.New(m.band, m.scheduler, m.tweens, cfg.Options(), logger)
	return m
}

// frameInterval converts a frame rate into a tick interval, falling back to
// 60 fps for non-positive rates so a bad config can never divide by zero.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// Marquee exposes the engine, mainly for tests.
func (m *Model) Marquee() *marquee.Marquee {
	return m.mq
}

// Init starts the animation tick.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.scheduler.Flush()
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.band.SetWidth(msg.Width - bandPadding)
		m.mq.NotifyResize()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ReloadMsg:
		return m.applyConfig(msg.Cfg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.PlayPause):
		if m.mq.Running() {
			m.mq.Pause()
		} else {
			m.mq.Play()
		}
	case key.Matches(msg, m.keys.Boost):
		if msg.String() == "up" {
			m.bumpProgress(progressStep)
		} else {
			m.bumpProgress(-progressStep)
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.bumpProgress(progressStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.bumpProgress(-progressStep)
		return m, nil
	}

	over := m.overBand(msg.X, msg.Y)
	if over && !m.hovering {
		m.hovering = true
		m.mq.PointerEnter()
	} else if !over && m.hovering {
		m.hovering = false
		m.mq.PointerLeave()
	}
	return m, nil
}

// overBand reports whether the pointer is inside the bordered band area.
// Row 0 is the title; the band's border starts on the next row.
func (m *Model) overBand(x, y int) bool {
	_, chipH := m.chipBox()
	top := 1
	bottom := top + chipH + 1 // border rows included
	return y >= top && y <= bottom && x >= 1 && x < m.width-1
}

func (m *Model) chipBox() (w, h int) {
	ew, eh := m.band.ElementSize()
	return int(ew), int(eh)
}

func (m *Model) bumpProgress(delta float64) {
	m.progress += delta
	if m.progress < 0 {
		m.progress = 0
	}
	if m.progress > 1 {
		m.progress = 1
	}
	m.mq.UpdateSpeed(m.progress, true)
}

// applyConfig swaps the engine for one resolved from the reloaded file. The
// old instance is destroyed first so no dangling frame callbacks survive.
func (m *Model) applyConfig(cfg *config.Config) (tea.Model, tea.Cmd) {
	m.log.Debug("applying reloaded config")
	m.mq.Destroy()
	m.tweens.Stop()

	m.cfg = cfg
	m.interval = frameInterval(cfg.UI.FPS)
	m.tweens = tween.NewRunner(m.scheduler, m.interval)
	m.band = stage.NewBand(cfg.UI.Chip, m.styles.Chip, cfg.UI.Markers...)
	m.band.SetWidth(m.width - bandPadding)
	m.mq = marquee.New(m.band, m.scheduler, m.tweens, cfg.Options(), m.log)
	m.progress = 0
	m.hovering = false
	return m, nil
}

func (m *Model) teardown() {
	m.mq.Destroy()
	m.tweens.Stop()
}

// View paints the title, the bordered band and a status footer.
func (m *Model) View() string {
	if m.width == 0 {
		return "measuring…"
	}

	state := "paused"
	if m.mq.Running() {
		state = "running"
		if !m.mq.Animating() {
			state = "holding"
		}
	}
	speed := m.mq.Speed()
	status := fmt.Sprintf("%s · speed %+.2f · slides %d · progress %.2f",
		state, speed.Value, m.mq.Slides(), m.progress)
	if m.hovering {
		status += " · hover"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("marquee"),
		m.styles.Band.Width(m.width-2).Render(m.band.View()),
		m.styles.Status.Render(status),
		m.styles.Status.Render(m.help.View(m.keys)),
	)
}
