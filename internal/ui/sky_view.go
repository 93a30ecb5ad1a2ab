// Package ui provides the interactive catalog sky view using Bubble Tea.
package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/sidus/internal/astro"
	"github.com/litescript/sidus/internal/catalog"
)

const (
	// Field of view in degrees
	fovRA  = 120.0 // horizontal
	fovDec = 60.0  // vertical

	panStep = 10.0 // degrees per keypress

	// Star glyphs by magnitude (lower = brighter)
	glyphStarBrightest = '✶' // mag < 1.5
	glyphStarBright    = '✸' // mag 1.5-3.0
	glyphStarDim       = '·' // mag >= 3.0
	glyphStarFocused   = '◆'

	// Star colors (grayscale, focus in gold)
	colorStarBrightest = "255"
	colorStarBright    = "250"
	colorStarDim       = "244"
	colorStarFocused   = "229"
	colorFrame         = "60" // muted purple
)

// LabelMode controls which star labels are drawn.
type LabelMode int

const (
	LabelFocused LabelMode = iota // only the focused star
	LabelAll                      // every named star in view
	LabelNone
)

// Model renders the catalog on an RA/Dec chart: right ascension increases to
// the left (sky convention), declination increases upward.
type Model struct {
	header catalog.Header
	stars  []catalog.Star // brightest first

	width  int
	height int

	// Camera center, degrees
	camRA  float64
	camDec float64

	focusIdx  int
	labelMode LabelMode
}

// New creates a sky view over a parsed catalog. Stars are ordered brightest
// first so focus cycling starts at the most prominent objects.
func New(cat *catalog.Catalog) Model {
	stars := make([]catalog.Star, len(cat.Stars))
	copy(stars, cat.Stars)
	sort.SliceStable(stars, func(i, j int) bool {
		return stars[i].Magnitude < stars[j].Magnitude
	})

	m := Model{
		header:    cat.Header,
		stars:     stars,
		camRA:     180,
		camDec:    0,
		labelMode: LabelFocused,
	}
	if len(stars) > 0 {
		m.camRA = astro.NormalizeRA(astro.RadToDeg(stars[0].RightAscension))
		m.camDec = astro.RadToDeg(stars[0].Declination)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.camRA = astro.NormalizeRA(m.camRA + panStep)
		case "right", "l":
			m.camRA = astro.NormalizeRA(m.camRA - panStep)
		case "up", "k":
			m.camDec = clamp(m.camDec+panStep, -90, 90)
		case "down", "j":
			m.camDec = clamp(m.camDec-panStep, -90, 90)
		case "tab", "n":
			m = m.focusNext(1)
		case "shift+tab", "p":
			m = m.focusNext(-1)
		case "L":
			m.labelMode = (m.labelMode + 1) % 3
		}
	}
	return m, nil
}

func (m Model) focusNext(dir int) Model {
	if len(m.stars) == 0 {
		return m
	}
	m.focusIdx = (m.focusIdx + dir + len(m.stars)) % len(m.stars)
	star := m.stars[m.focusIdx]
	m.camRA = astro.NormalizeRA(astro.RadToDeg(star.RightAscension))
	m.camDec = astro.RadToDeg(star.Declination)
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky view requires a larger terminal"
	}

	canvasHeight := m.height - 4

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCanvas(m.width, canvasHeight))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFrame))

	title := titleStyle.Render("Catalog Sky View")
	stats := dimStyle.Render(fmt.Sprintf("%d stars | %s", len(m.stars), m.header.Epoch))
	cam := dimStyle.Render(fmt.Sprintf("RA:%.0f° Dec:%+.0f°", m.camRA, m.camDec))
	keys := dimStyle.Render("←→↑↓ pan | tab focus | L labels | q quit")

	return fmt.Sprintf("%s | %s | %s | %s", title, stats, cam, keys)
}

func (m Model) renderStatus() string {
	if len(m.stars) == 0 {
		return "Catalog has no stars in range"
	}

	star := m.stars[m.focusIdx]
	label := star.Name
	if label == "" && star.ID != 0 {
		label = fmt.Sprintf("#%.0f", star.ID)
	}
	if label == "" {
		label = fmt.Sprintf("star %d", m.focusIdx+1)
	}

	line := fmt.Sprintf(">>> %s | %s %s | mag %.2f", label,
		astro.FormatRA(star.RightAscension),
		astro.FormatDec(star.Declination),
		star.Magnitude)
	if strings.TrimSpace(star.SpectralType) != "" {
		line += fmt.Sprintf(" | %s", star.SpectralType)
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorStarFocused)).Render(line)
}

// starPos tracks a plotted star for label rendering.
type starPos struct {
	x, y      int
	name      string
	isFocused bool
}

func (m Model) renderCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236"
		}
	}

	frameY := height - 1

	var positions []starPos
	for i, star := range m.stars {
		raDeg := astro.RadToDeg(star.RightAscension)
		decDeg := astro.RadToDeg(star.Declination)

		x, y, visible := m.project(raDeg, decDeg, width, frameY)
		if !visible || x < 0 || x >= width || y < 0 || y >= frameY {
			continue
		}

		isFocused := i == m.focusIdx
		glyph, color := starGlyph(star.Magnitude)
		if isFocused {
			glyph, color = glyphStarFocused, colorStarFocused
		}
		canvas[y][x] = glyph
		colors[y][x] = color

		if star.Name != "" || isFocused {
			positions = append(positions, starPos{x: x, y: y, name: star.Name, isFocused: isFocused})
		}
	}

	m.renderLabels(canvas, colors, width, frameY, positions)

	// Bottom frame with RA tick marks every 30 degrees
	for x := 0; x < width; x++ {
		canvas[frameY][x] = '─'
		colors[frameY][x] = colorFrame
	}
	for tick := 0.0; tick < 360; tick += 30 {
		x, _, visible := m.project(tick, m.camDec-fovDec/2, width, frameY)
		if !visible || x < 0 || x >= width {
			continue
		}
		label := []rune(fmt.Sprintf("%dh", int(tick/15)))
		for i, r := range label {
			if x+i < width {
				canvas[frameY][x+i] = r
				colors[frameY][x+i] = "252"
			}
		}
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLabels draws star names next to their glyphs. Focused labels claim
// their cells first so they win overlaps.
func (m Model) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, frameY int, positions []starPos) {
	if m.labelMode == LabelNone {
		return
	}

	claimed := make(map[[2]int]bool)
	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		for i := 0; i < len(pos.name)+2; i++ {
			claimed[[2]int{pos.y, pos.x + 2 + i}] = true
		}
	}

	for _, pos := range positions {
		if m.labelMode == LabelFocused && !pos.isFocused {
			continue
		}
		if pos.name == "" {
			continue
		}

		color := lipgloss.Color(colorStarDim)
		text := pos.name
		if pos.isFocused {
			color = colorStarFocused
			text = "◄ " + pos.name
		}

		for i, r := range []rune(text) {
			x := pos.x + 2 + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= frameY {
				continue
			}
			if !pos.isFocused && claimed[[2]int{pos.y, x}] {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = color
		}
	}
}

// project maps RA/Dec (degrees) to canvas coordinates relative to the
// camera. RA increases to the left, matching a sky chart seen from inside
// the celestial sphere.
func (m Model) project(raDeg, decDeg float64, width, height int) (int, int, bool) {
	dRA := normalizeAngle(raDeg - m.camRA)
	dDec := decDeg - m.camDec

	if dRA < -fovRA/2 || dRA > fovRA/2 || dDec < -fovDec/2 || dDec > fovDec/2 {
		return 0, 0, false
	}

	x := int((fovRA/2 - dRA) / fovRA * float64(width))
	y := int((fovDec/2 - dDec) / fovDec * float64(height))
	return x, y, true
}

// starGlyph picks a glyph and color by magnitude; brighter stars get more
// prominent symbols.
func starGlyph(mag float32) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBrightest, colorStarBrightest
	case mag < 3.0:
		return glyphStarBright, colorStarBright
	default:
		return glyphStarDim, colorStarDim
	}
}

// normalizeAngle wraps an angle to -180..+180.
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
