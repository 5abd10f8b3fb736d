package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/loopgen/internal/loop"
)

const (
	playerWidth  = 64
	playerHeight = 24
	playerFPS    = 30
)

var (
	frameStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Player replays a generated loop in the terminal. It interpolates between
// the stored frames at display rate and owns its own timing state; the
// generator is never re-run during playback.
type Player struct {
	res    loop.Result
	in     loop.Input
	t      float64
	speed  float64
	laps   int
	paused bool

	// Spring-smoothed chase marker trailing the exact loop position.
	spring harmonica.Spring
	cx, cy float64
	vx, vy float64

	bar progress.Model
}

func NewPlayer(res loop.Result, in loop.Input) Player {
	first := res.Samples[0]
	return Player{
		res:    res,
		in:     in,
		speed:  1.0,
		spring: harmonica.NewSpring(harmonica.FPS(playerFPS), 5.0, 0.4),
		cx:     first.X,
		cy:     first.Y,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(playerWidth-4)),
	}
}

func (p Player) Init() tea.Cmd {
	return tea.Tick(time.Second/playerFPS, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.paused = !p.paused
		case "+", "=":
			p.speed = math.Min(p.speed*1.25, 8)
		case "-", "_":
			p.speed = math.Max(p.speed/1.25, 0.125)
		case "r":
			p.t = 0
			p.laps = 0
		}
	case TickMsg:
		if !p.paused {
			p.t += p.speed / playerFPS
			for p.t >= p.res.Period {
				p.t -= p.res.Period
				p.laps++
			}
		}

		f := p.frameAt(p.t)
		p.cx, p.vx = p.spring.Update(p.cx, p.vx, f.X)
		p.cy, p.vy = p.spring.Update(p.cy, p.vy, f.Y)

		return p, tea.Tick(time.Second/playerFPS, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return p, nil
}

// frameAt linearly interpolates the stored loop frames at time t. The seam
// frame makes the wrap interval well-defined without special casing.
func (p Player) frameAt(t float64) loop.Frame {
	n := len(p.res.Samples)
	u := t / p.res.Period * float64(n)
	i := int(u)
	if i >= n {
		i = n - 1
	}
	frac := u - float64(i)

	a := p.res.LoopFrames[i]
	b := p.res.LoopFrames[i+1]
	return loop.Frame{
		T:     t,
		Angle: a.Angle + (b.Angle-a.Angle)*frac,
		X:     a.X + (b.X-a.X)*frac,
		Y:     a.Y + (b.Y-a.Y)*frac,
	}
}

func (p Player) View() string {
	canvas := make([][]rune, playerHeight)
	for i := range canvas {
		canvas[i] = make([]rune, playerWidth)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	plot := func(x, y float64, c rune) {
		col, row := p.project(x, y)
		if col >= 0 && col < playerWidth && row >= 0 && row < playerHeight {
			canvas[row][col] = c
		}
	}

	for _, f := range p.res.Samples {
		plot(f.X, f.Y, '·')
	}
	plot(p.in.CenterX, p.in.CenterY, '+')
	plot(p.cx, p.cy, '*')

	cur := p.frameAt(p.t)
	plot(cur.X, cur.Y, 'O')

	rows := make([]string, playerHeight)
	for i, line := range canvas {
		rows[i] = string(line)
	}

	stats := []string{
		headerStyle.Render("loopgen player"),
		labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.3fs / %.3fs", p.t, p.res.Period)),
		labelStyle.Render("laps") + valueStyle.Render(fmt.Sprintf("%d", p.laps)),
		labelStyle.Render("speed") + valueStyle.Render(fmt.Sprintf("%.2fx", p.speed)),
		labelStyle.Render("angle") + valueStyle.Render(fmt.Sprintf("%.3f rad", cur.Angle)),
		labelStyle.Render("frames") + valueStyle.Render(fmt.Sprintf("%d", len(p.res.Samples))),
	}
	if p.paused {
		stats = append(stats, valueStyle.Render("paused"))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		frameStyle.Render(strings.Join(rows, "\n")),
		statsStyle.Render(strings.Join(stats, "\n")),
	)

	footer := p.bar.ViewAs(p.t/p.res.Period) + "\n" +
		helpStyle.Render("space pause · +/- speed · r restart · q quit")

	return body + "\n" + footer
}

// project maps loop coordinates onto the character grid, doubling the x
// scale to compensate for terminal cell aspect.
func (p Player) project(x, y float64) (col, row int) {
	span := math.Max(p.in.Radius*1.25, 1e-6)
	nx := (x - p.in.CenterX) / span
	ny := (y - p.in.CenterY) / span
	col = playerWidth/2 + int(nx*float64(playerWidth)/2)
	row = playerHeight/2 - int(ny*float64(playerHeight)/2)
	return col, row
}
