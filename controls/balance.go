package controls

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MinBoardWeight is the total weight, in kilograms, below which a
// [BalanceBoard] considers itself unoccupied and reads (0, 0).
const MinBoardWeight = 5.0

// Frame is one reading of the four pressure sensors of a balance board.
type Frame struct {
	TopLeft, TopRight       float64
	BottomLeft, BottomRight float64
}

// Total returns the total weight on the board.
func (f Frame) Total() float64 {
	return f.TopLeft + f.TopRight + f.BottomLeft + f.BottomRight
}

// CenterOfPressure returns the offset of the center of pressure from the
// middle of the board, normalized to [-1, 1] on both axes. Positive x leans
// right and positive y leans forward. Boards carrying less than
// MinBoardWeight read (0, 0).
func (f Frame) CenterOfPressure() (float64, float64) {
	total := f.Total()
	if total < MinBoardWeight {
		return 0, 0
	}
	x := (f.TopRight + f.BottomRight - f.TopLeft - f.BottomLeft) / total
	y := (f.TopLeft + f.TopRight - f.BottomLeft - f.BottomRight) / total
	return clamp(x), clamp(y)
}

var errFrameFields = errors.New("want four weights")

// ParseFrame parses a line of four whitespace-separated weights in the order
// top-left, top-right, bottom-left, bottom-right.
func ParseFrame(line string) (Frame, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Frame{}, fmt.Errorf("malformed frame %q: %w", line, errFrameFields)
	}
	var w [4]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Frame{}, fmt.Errorf("malformed frame %q: %w", line, err)
		}
		w[i] = v
	}
	return Frame{
		TopLeft:     w[0],
		TopRight:    w[1],
		BottomLeft:  w[2],
		BottomRight: w[3],
	}, nil
}

// BalanceBoard reads a pressure-sensing balance board, reporting where its
// occupant is leaning.
//
// The board is read as a stream of text frames, one per line, in the format
// accepted by [ParseFrame]. Blank lines are skipped.
type BalanceBoard struct {
	name  string
	rc    io.ReadCloser
	state latest
	done  chan struct{}
}

// OpenBalanceBoard opens the frame stream at path, usually a FIFO fed by a
// device driver.
func OpenBalanceBoard(path string) (*BalanceBoard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DeviceError{Device: path, Err: err}
	}
	return NewBalanceBoard(path, f), nil
}

// NewBalanceBoard reads frames from rc. Name identifies the device in errors.
func NewBalanceBoard(name string, rc io.ReadCloser) *BalanceBoard {
	b := &BalanceBoard{
		name: name,
		rc:   rc,
		done: make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *BalanceBoard) run() {
	defer close(b.done)
	sc := bufio.NewScanner(b.rc)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		f, err := ParseFrame(line)
		if err != nil {
			b.state.fail(b.name, err)
			return
		}
		b.state.set(f.CenterOfPressure())
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	b.state.fail(b.name, err)
}

// Axes implements [TwoAxis].
func (b *BalanceBoard) Axes() (float64, float64, error) {
	return b.state.get()
}

// Close closes the frame stream. Later calls to Axes fail with [ErrClosed].
func (b *BalanceBoard) Close() error {
	b.state.fail(b.name, ErrClosed)
	return b.rc.Close()
}
