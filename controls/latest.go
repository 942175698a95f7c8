package controls

import "sync"

// latest holds the most recent state of a device read in the background.
// The first failure sticks.
type latest struct {
	mu   sync.Mutex
	x, y float64
	err  error
}

func (l *latest) set(x, y float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.x, l.y = x, y
}

func (l *latest) setX(x float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.x = x
}

func (l *latest) setY(y float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.y = y
}

func (l *latest) fail(device string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err == nil {
		l.err = &DeviceError{Device: device, Err: err}
	}
}

func (l *latest) get() (float64, float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return 0, 0, l.err
	}
	return l.x, l.y, nil
}
