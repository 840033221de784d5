package tui

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/flipgrid/internal/board"
	"github.com/san-kum/flipgrid/internal/config"
	"github.com/san-kum/flipgrid/internal/cycler"
	"github.com/san-kum/flipgrid/internal/export"
	"github.com/san-kum/flipgrid/internal/segment"
	"github.com/san-kum/flipgrid/internal/timeline"
)

const (
	frameInterval = 16 * time.Millisecond
	// A stalled terminal must not fast-forward the board when frames
	// resume.
	maxFrameDelta = 250 * time.Millisecond

	statusTTL    = 2 * time.Second
	frameHistory = 72
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type Model struct {
	cfg   *config.Config
	sched *timeline.Scheduler
	surf  *termSurface
	grid  *board.Grid
	cyc   *cycler.Cycler
	segs  []*segment.Segmenter

	accent   lipgloss.Style
	width    int
	height   int
	lastTick time.Time
	frameMs  []float64

	showStats bool
	status    string
	statusID  timeline.ID
}

// NewModel wires the full board: scheduler, terminal surface, grid,
// segmenters and cycler. Cycling starts enabled.
func NewModel(cfg *config.Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sched := timeline.New()
	surf := newTermSurface(sched)

	grid, err := board.NewGrid(surf, sched, cfg.GridOptions())
	if err != nil {
		return nil, err
	}

	imgs, err := sourceImages(cfg)
	if err != nil {
		return nil, err
	}
	segs := make([]*segment.Segmenter, len(imgs))
	srcs := make([]board.FragmentProvider, len(imgs))
	for i, img := range imgs {
		seg, err := segment.New(fmt.Sprintf("seg%d", i), img, cfg.Cols, cfg.Rows, cfg.PadSize, cfg.GridGap)
		if err != nil {
			return nil, err
		}
		segs[i] = seg
		srcs[i] = seg
	}

	cyc, err := cycler.New(sched, grid, srcs, cfg.CyclePeriod())
	if err != nil {
		return nil, err
	}
	cyc.Stage()
	cyc.EnableCycling()

	m := &Model{
		cfg:    cfg,
		sched:  sched,
		surf:   surf,
		grid:   grid,
		cyc:    cyc,
		segs:   segs,
		accent: fallbackAccent,
	}
	if palette, err := segment.Palette(segs[0].Scaled(), 4); err == nil && len(palette) > 0 {
		m.accent = lipgloss.NewStyle().Foreground(lipgloss.Color(palette[0].Hex()))
	}
	return m, nil
}

// sourceImages loads the configured files, or generates synthetic
// patterns when none are given.
func sourceImages(cfg *config.Config) ([]image.Image, error) {
	if len(cfg.Images) == 0 {
		imgs := make([]image.Image, 4)
		for i := range imgs {
			imgs[i] = segment.Pattern(i, 320, 240)
		}
		return imgs, nil
	}
	imgs := make([]image.Image, len(cfg.Images))
	for i, path := range cfg.Images {
		img, err := segment.LoadImage(path)
		if err != nil {
			return nil, err
		}
		imgs[i] = img
	}
	return imgs, nil
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			dt := now.Sub(m.lastTick)
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			m.sched.Advance(dt)
			m.frameMs = append(m.frameMs, float64(dt)/float64(time.Millisecond))
			if len(m.frameMs) > frameHistory {
				m.frameMs = m.frameMs[1:]
			}
		}
		m.lastTick = now
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "enter":
		m.cyc.ManualCycle()
		m.flash("cycled")
	case "p":
		if m.cyc.Enabled() {
			m.cyc.DisableCycling()
			m.flash("auto-cycle off")
		} else {
			m.cyc.EnableCycling()
			m.flash("auto-cycle on")
		}
	case "g":
		m.showStats = !m.showStats
	case "s":
		m.snapshot()
	}
	return m, nil
}

func (m *Model) snapshot() {
	path := fmt.Sprintf("flipgrid_%d.png", time.Now().Unix())
	seg := m.segs[m.cyc.Current()]
	caption := fmt.Sprintf("flipgrid %d/%d", m.cyc.Current()+1, len(m.segs))
	if err := export.Snapshot(seg, m.cfg.CornerRadius, caption, path); err != nil {
		m.flash("snapshot failed: " + err.Error())
		return
	}
	m.flash("saved " + path)
}

// flash shows a transient status message.
func (m *Model) flash(s string) {
	m.status = s
	if m.statusID != 0 {
		m.sched.Cancel(m.statusID)
	}
	m.statusID = m.sched.After(statusTTL, func() {
		m.status = ""
		m.statusID = 0
	})
}

func (m *Model) View() string {
	var b strings.Builder

	auto := green.Render("● auto")
	if !m.cyc.Enabled() {
		auto = yellow.Render("○ manual")
	}
	b.WriteString(fmt.Sprintf("\n  %s  %s  %s\n\n",
		m.accent.Render("f l i p g r i d"),
		auto,
		dim.Render(fmt.Sprintf("image %d/%d", m.cyc.Current()+1, len(m.segs)))))

	b.WriteString(m.surf.render(m.cfg.Cols, m.cfg.Rows))

	if m.status != "" {
		b.WriteString("\n  " + white.Render(m.status) + "\n")
	} else {
		b.WriteString("\n")
	}

	if m.showStats && len(m.frameMs) > 1 {
		plot := asciigraph.Plot(m.frameMs,
			asciigraph.Height(6),
			asciigraph.Caption("frame ms"))
		b.WriteString("\n" + dimmer.Render(plot) + "\n")
	}

	b.WriteString("\n" + dim.Render("  space cycle  p auto  g stats  s snapshot  q quit") + "\n")
	return b.String()
}

// Run starts the interactive board.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
