package controls

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// KeyboardDecay is the factor by which a [Keyboard] scales its axes after
// every read.
const KeyboardDecay = 0.8

// Keyboard derives two axes from terminal key presses.
//
// Terminals report key presses and repeats but no releases, so a press sets
// its axis to full deflection and the axis then decays back to the center
// while no further presses arrive. The arrow keys and WASD steer; space
// centers both axes at once.
type Keyboard struct {
	mu   sync.Mutex
	x, y float64
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// HandleEvent updates the axes from ev. It reports whether ev was a steering
// key.
func (k *Keyboard) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	switch key.Key() {
	case tcell.KeyLeft:
		k.x = -1
	case tcell.KeyRight:
		k.x = 1
	case tcell.KeyUp:
		k.y = 1
	case tcell.KeyDown:
		k.y = -1
	case tcell.KeyRune:
		switch key.Rune() {
		case 'a', 'A':
			k.x = -1
		case 'd', 'D':
			k.x = 1
		case 'w', 'W':
			k.y = 1
		case 's', 'S':
			k.y = -1
		case ' ':
			k.x, k.y = 0, 0
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Axes implements [TwoAxis]. It never fails.
func (k *Keyboard) Axes() (float64, float64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	x, y := k.x, k.y
	k.x, k.y = decay(k.x), decay(k.y)
	return x, y, nil
}

func decay(v float64) float64 {
	v *= KeyboardDecay
	if math.Abs(v) < 0.01 {
		return 0
	}
	return v
}
