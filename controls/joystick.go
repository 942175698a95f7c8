package controls

import (
	"encoding/binary"
	"io"
	"os"
)

// Event types of the Linux joystick API.
const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	// jsEventInit is set on the synthetic events that report the initial
	// state of the device after opening it.
	jsEventInit = 0x80
)

// jsEvent is a struct js_event as read from /dev/input/jsN.
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// Joystick reads the first two axes of a game controller through the Linux
// joystick API.
type Joystick struct {
	name  string
	rc    io.ReadCloser
	state latest
	done  chan struct{}
}

// OpenJoystick opens the joystick device at path, such as /dev/input/js0.
func OpenJoystick(path string) (*Joystick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DeviceError{Device: path, Err: err}
	}
	return NewJoystick(path, f), nil
}

// NewJoystick reads joystick events from rc. Name identifies the device in
// errors.
func NewJoystick(name string, rc io.ReadCloser) *Joystick {
	j := &Joystick{
		name: name,
		rc:   rc,
		done: make(chan struct{}),
	}
	go j.run()
	return j
}

func (j *Joystick) run() {
	defer close(j.done)
	var ev jsEvent
	for {
		if err := binary.Read(j.rc, binary.LittleEndian, &ev); err != nil {
			j.state.fail(j.name, err)
			return
		}
		j.handle(ev)
	}
}

func (j *Joystick) handle(ev jsEvent) {
	if ev.Type&^jsEventInit != jsEventAxis {
		return
	}
	switch ev.Number {
	case 0:
		j.state.setX(normalizeAxis(ev.Value))
	case 1:
		// The joystick API reports up as negative.
		j.state.setY(-normalizeAxis(ev.Value))
	}
}

func normalizeAxis(v int16) float64 {
	return clamp(float64(v) / 32767)
}

// Axes implements [TwoAxis].
func (j *Joystick) Axes() (float64, float64, error) {
	return j.state.get()
}

// Close closes the device. Later calls to Axes fail with [ErrClosed].
func (j *Joystick) Close() error {
	j.state.fail(j.name, ErrClosed)
	return j.rc.Close()
}
