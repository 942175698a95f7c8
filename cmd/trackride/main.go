// Command trackride rides a track in the terminal.
//
// The road is drawn from above. Steer with the configured input backend;
// with the keyboard backend the arrow keys or WASD steer and change speed.
// Escape, Ctrl-C or q quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"honnef.co/go/track"
	"honnef.co/go/track/controls"
)

type eventHandler interface {
	HandleEvent(tcell.Event) bool
}

// Game holds the state of a ride.
type Game struct {
	screen tcell.Screen
	input  controls.TwoAxis
	chime  *chime
	cfg    *Config

	road   []track.Vertex
	center []track.Vertex
	view   View
	rider  Rider

	status string
}

func NewGame(cfg *Config, input controls.TwoAxis) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	course := cfg.Controls()
	road, _ := track.Ribbon(track.Follow(course, cfg.Ride.Rate), track.RibbonOptions{
		Width: cfg.Ride.Width,
		Lanes: cfg.Ride.Lanes,
	})
	center, _ := track.CenterLine(track.Follow(course, cfg.Ride.Rate/2), [3]float32{1, 1, 1})

	g := &Game{
		screen: screen,
		input:  input,
		cfg:    cfg,
		road:   road,
		center: center,
		rider: Rider{
			Controls: course,
			Speed:    cfg.Ride.Speed,
			Width:    cfg.Ride.Width,
		},
	}
	g.resize()

	g.chime, err = newChime()
	if err != nil {
		// Non-fatal, the ride works without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	return g, nil
}

func (g *Game) resize() {
	w, h := g.screen.Size()
	// the last row is the status line
	g.view = NewView(g.road, w, max(h-1, 1))
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
	}
	if h, ok := g.input.(eventHandler); ok {
		h.HandleEvent(ev)
	}
	return true
}

func (g *Game) tick(dt float64) {
	x, y, err := g.input.Axes()
	if err != nil {
		// A failing device steers straight ahead for this frame.
		x, y = 0, 0
		g.status = err.Error()
	} else {
		g.status = ""
	}

	pose, ok := g.rider.Step(dt, x, y)
	if !ok {
		return
	}
	if pose.Lapped {
		g.chime.play()
	}
	g.draw(pose, x, y)
}

var (
	edgeStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	laneStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	centerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	riderStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

func (g *Game) draw(pose Pose, x, y float64) {
	g.screen.Clear()
	cols := 2*g.cfg.Ride.Lanes + 1
	for i, v := range g.road {
		cx, cy, ok := g.view.VertexCell(v)
		if !ok {
			continue
		}
		if col := i % cols; col == 0 || col == cols-1 {
			g.screen.SetContent(cx, cy, '#', nil, edgeStyle)
		} else {
			g.screen.SetContent(cx, cy, '.', nil, laneStyle)
		}
	}
	for _, v := range g.center {
		if cx, cy, ok := g.view.VertexCell(v); ok {
			g.screen.SetContent(cx, cy, '·', nil, centerStyle)
		}
	}
	if cx, cy, ok := g.view.Cell(pose.Position); ok {
		g.screen.SetContent(cx, cy, '@', nil, riderStyle)
	}

	w, h := g.screen.Size()
	line := fmt.Sprintf(" lap %d  t=%.2f  steer=%+.2f  throttle=%+.2f ", g.rider.Laps, pose.Sample.Param, x, y)
	if g.status != "" {
		line += " " + g.status
	}
	for i, r := range []rune(line) {
		if i >= w {
			break
		}
		g.screen.SetContent(i, h-1, r, nil, statusStyle)
	}
	g.screen.Show()
}

func (g *Game) run() {
	frame := time.Second / time.Duration(g.cfg.Ride.FPS)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			g.tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (g *Game) cleanup() {
	if g.chime != nil {
		g.chime.close()
	}
	g.screen.Fini()
}

func main() {
	configPath := flag.String("config", "trackride.yaml", "path of the optional configuration file")
	backend := flag.String("controls", "", "input backend: keyboard, joystick, balance or none (overrides the configuration)")
	device := flag.String("device", "", "input device path (overrides the configuration)")
	logPath := flag.String("log", "", "write log messages to this file while riding")
	flag.Parse()

	cfg, err := LoadOptional(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *backend != "" {
		cfg.Controls.Backend = *backend
	}
	if *device != "" {
		cfg.Controls.Device = *device
	}

	input, err := controls.Open(cfg.Controls)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open controls: %v\n", err)
		os.Exit(1)
	}
	if c, ok := input.(io.Closer); ok {
		defer c.Close()
	}

	// The screen owns the terminal from here on.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	game, err := NewGame(cfg, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
