// Package controls reads two normalized input axes from real-time input
// devices.
//
// Every backend implements [TwoAxis]. Backends are picked once at startup,
// typically with [Open] and a [Config] loaded from the application's
// configuration. Backends that hold a device also implement io.Closer.
package controls

import (
	"errors"
	"fmt"
)

// TwoAxis is a source of two axes, each normalized to [-1, 1].
//
// For sticks and boards, x is left to right and y is back to front.
type TwoAxis interface {
	// Axes samples the latest input. Failures to read the device are
	// reported as *DeviceError.
	Axes() (x, y float64, err error)
}

var (
	// ErrDevice matches every *DeviceError via errors.Is.
	ErrDevice = errors.New("controls: device error")
	// ErrClosed is the cause of the errors returned by closed backends.
	ErrClosed = errors.New("controls: closed")
)

// A DeviceError records a failure to read an input device.
type DeviceError struct {
	Device string
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("controls: %s: %v", e.Device, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

func (e *DeviceError) Is(target error) bool { return target == ErrDevice }

// Config selects and configures a backend.
type Config struct {
	// Backend is one of "keyboard", "joystick", "balance" and "none". The
	// empty string selects the keyboard.
	Backend string `yaml:"backend,omitempty"`
	// Device is the path of the device read by the joystick and balance
	// backends.
	Device string `yaml:"device,omitempty"`
}

// DefaultJoystick is the device opened by the joystick backend if
// [Config.Device] is empty.
const DefaultJoystick = "/dev/input/js0"

// Open returns the backend described by cfg.
func Open(cfg Config) (TwoAxis, error) {
	switch cfg.Backend {
	case "", "keyboard":
		return NewKeyboard(), nil
	case "joystick":
		dev := cfg.Device
		if dev == "" {
			dev = DefaultJoystick
		}
		j, err := OpenJoystick(dev)
		if err != nil {
			return nil, err
		}
		return j, nil
	case "balance":
		if cfg.Device == "" {
			return nil, errors.New("controls: balance backend requires a device")
		}
		b, err := OpenBalanceBoard(cfg.Device)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "none":
		return Neutral{}, nil
	default:
		return nil, fmt.Errorf("controls: unknown backend %q", cfg.Backend)
	}
}

// Neutral is a [TwoAxis] that always reads (0, 0).
type Neutral struct{}

func (Neutral) Axes() (float64, float64, error) { return 0, 0, nil }

func clamp(v float64) float64 {
	return max(-1, min(v, 1))
}
