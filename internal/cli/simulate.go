package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/orient"
	"github.com/matzehuels/screenfit/pkg/preview"
	"github.com/matzehuels/screenfit/pkg/profile"
	"github.com/matzehuels/screenfit/pkg/widget"
)

// Terminal map styles
var (
	simOutsideStyle = lipgloss.NewStyle().Foreground(colorDim)
	simSurfaceStyle = lipgloss.NewStyle().Foreground(colorGray)
	simFitStyle     = lipgloss.NewStyle().Foreground(colorBlue)
	simWidgetStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	simErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	cellOutside = ' '
	cellSurface = '·'
	cellFit     = '░'
	// statusLines are the terminal rows kept for the caption and help.
	statusLines = 2
)

// simulateCommand creates the simulate command, which adapts a profile to the
// terminal window live.
func (c *CLI) simulateCommand() *cobra.Command {
	var (
		flags profileFlags
		cell  string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Adapt a profile to the terminal window interactively",
		Long: `Treat the terminal as a screen and adapt the profile to it live.

Each character cell counts as --cell pixels. Resize the terminal to trigger
passes. Keys: m cycles the scale mode, o toggles the screen mode, h and v
toggle horizontal and vertical alignment, q quits.`,
		Example: `  screenfit simulate
  screenfit simulate -p examples/profiles/tablet.yaml --cell 10x20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.load(cmd)
			if err != nil {
				return err
			}
			cw, ch, err := parseSize(cell)
			if err != nil {
				return err
			}
			m, err := newSimulateModel(c.Logger, p, geom.Size{Width: cw, Height: ch})
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&cell, "cell", "8x16", "pixel size of one terminal cell, WxH")

	return cmd
}

// =============================================================================
// simulateModel - live adaptation in the terminal
// =============================================================================

// simulateModel drives a controller from terminal resize events.
type simulateModel struct {
	ctrl    *adapt.Controller
	profile *profile.Profile
	cfg     adapt.Config
	cell    geom.Size
	screen  *geom.Size
	boxes   []*widget.Box

	cols, rows int
	passes     int
	changes    int
	err        error
}

func newSimulateModel(logger *log.Logger, p *profile.Profile, cell geom.Size) (*simulateModel, error) {
	cfg, err := p.Config()
	if err != nil {
		return nil, err
	}
	m := &simulateModel{profile: p, cell: cell, screen: &geom.Size{}}
	cfg.OnOrientationChange = func(orient.Orientation) { m.changes++ }
	m.cfg = cfg

	screen := adapt.ScreenFunc(func() (float64, float64) { return m.screen.Width, m.screen.Height })
	m.ctrl = adapt.New(adapt.WithLogger(logger), adapt.WithScreen(screen))
	if _, err := m.ctrl.SetResizeCallback(func(adapt.Snapshot) { m.passes++ }); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *simulateModel) Init() tea.Cmd {
	return nil
}

func (m *simulateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "m":
			m.cfg.ScaleMode = m.cfg.ScaleMode.Next()
			m.reconfigure()
		case "o":
			if m.cfg.ScreenMode == orient.Portrait {
				m.cfg.ScreenMode = orient.Landscape
			} else {
				m.cfg.ScreenMode = orient.Portrait
			}
			m.reconfigure()
		case "h":
			m.cfg.AlignH = !m.cfg.AlignH
			m.reconfigure()
		case "v":
			m.cfg.AlignV = !m.cfg.AlignV
			m.reconfigure()
		}
	}
	return m, nil
}

// resize converts the terminal size to pixels and reports it. The first
// usable size configures the controller and attaches the widgets.
func (m *simulateModel) resize(cols, rows int) {
	m.cols, m.rows = cols, max(rows-statusLines, 0)
	*m.screen = geom.Size{Width: float64(m.cols) * m.cell.Width, Height: float64(m.rows) * m.cell.Height}

	if m.ctrl.State() == adapt.Uninitialized {
		if m.cols == 0 || m.rows == 0 {
			return
		}
		m.reconfigure()
		if m.err == nil {
			m.boxes, m.err = m.profile.Attach(m.ctrl)
		}
		return
	}
	_, m.err = m.ctrl.Notify(m.screen.Width, m.screen.Height)
}

func (m *simulateModel) reconfigure() {
	m.err = m.ctrl.Set(m.cfg)
}

func (m *simulateModel) View() string {
	if m.cols == 0 || m.rows == 0 {
		return "Waiting for the terminal size…"
	}

	var b strings.Builder
	snap, ok := m.ctrl.Snapshot()
	if ok {
		b.WriteString(m.renderMap(snap))
	} else {
		b.WriteString(strings.Repeat("\n", m.rows))
	}

	switch {
	case m.err != nil:
		b.WriteString(simErrorStyle.Render(m.err.Error()))
	case ok:
		b.WriteString(StyleValue.Render(preview.Caption(snap)))
		b.WriteString(StyleDim.Render(fmt.Sprintf(" · %d passes · %d orientation changes", m.passes, m.changes)))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("m mode (%s) · o screen (%s) · h align-h (%t) · v align-v (%t) · q quit",
		m.cfg.ScaleMode, m.cfg.ScreenMode, m.cfg.AlignH, m.cfg.AlignV)))
	return b.String()
}

// renderMap draws the surface and the widgets, one rune per cell.
func (m *simulateModel) renderMap(snap adapt.Snapshot) string {
	grid := make([][]rune, m.rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(string(cellOutside), m.cols))
	}

	items := make([]preview.Item, len(m.boxes))
	for i, box := range m.boxes {
		items[i] = preview.BoxItem(box, m.profile.Widgets[i].Fit)
	}
	frame := preview.Layout(snap, items)

	m.fill(grid, frame.Surface, cellSurface)
	for _, it := range frame.Items {
		if it.Fit {
			m.fill(grid, it.Screen, cellFit)
		}
	}
	for _, it := range frame.Items {
		if !it.Fit {
			m.fill(grid, it.Screen, widgetRune(it.Name))
		}
	}

	var b strings.Builder
	for _, row := range grid {
		writeRuns(&b, row)
		b.WriteString("\n")
	}
	return b.String()
}

// fill sets every cell overlapped by r, given in viewport pixels.
func (m *simulateModel) fill(grid [][]rune, r geom.Rect, c rune) {
	x0 := clampCell(math.Floor(r.X/m.cell.Width), m.cols)
	x1 := clampCell(math.Ceil(r.Right()/m.cell.Width), m.cols)
	y0 := clampCell(math.Floor(r.Y/m.cell.Height), m.rows)
	y1 := clampCell(math.Ceil(r.Bottom()/m.cell.Height), m.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			grid[y][x] = c
		}
	}
}

func clampCell(v float64, n int) int {
	return int(math.Max(0, math.Min(v, float64(n))))
}

func widgetRune(name string) rune {
	for _, r := range strings.ToUpper(name) {
		return r
	}
	return '#'
}

// writeRuns writes row with one style per run of equal cell kinds.
func writeRuns(b *strings.Builder, row []rune) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && cellKind(row[i]) == cellKind(row[start]) {
			continue
		}
		b.WriteString(cellStyles[cellKind(row[start])].Render(string(row[start:i])))
		start = i
	}
}

var cellStyles = [...]lipgloss.Style{simOutsideStyle, simSurfaceStyle, simFitStyle, simWidgetStyle}

func cellKind(r rune) int {
	switch r {
	case cellOutside:
		return 0
	case cellSurface:
		return 1
	case cellFit:
		return 2
	}
	return 3
}
