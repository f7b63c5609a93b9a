// Package solo talks to a SOLO motor controller over its UART protocol.
// Only the read commands needed by the scope are implemented.
package solo

import (
	"errors"
	"fmt"
)

// Reading is the result of one device read. Err is non-nil when the device
// or the link reported a problem; Value may be stale or garbage in that case.
type Reading struct {
	Value float64
	Err   error
}

// Device is a motor controller that can report its feedback values.
type Device interface {
	// QuadratureCurrentIqFeedback reads the torque-producing current in amps.
	QuadratureCurrentIqFeedback() Reading
	// SpeedFeedback reads the rotor speed in RPM.
	SpeedFeedback() Reading
}

// BaudRate is the enumerated UART rate accepted by the controller.
type BaudRate int

const (
	Rate937500 BaudRate = iota
	Rate115200
)

// Bits returns the numeric baud rate.
func (b BaudRate) Bits() int {
	switch b {
	case Rate937500:
		return 937500
	case Rate115200:
		return 115200
	default:
		return 0
	}
}

func (b BaudRate) String() string {
	if bits := b.Bits(); bits != 0 {
		return fmt.Sprint(bits)
	}
	return fmt.Sprintf("BaudRate(%d)", int(b))
}

// ParseBaudRate parses a numeric baud rate such as "937500".
func ParseBaudRate(s string) (BaudRate, error) {
	for _, b := range []BaudRate{Rate937500, Rate115200} {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unsupported baud rate %q", s)
}

var (
	// ErrFrame is returned when a response is not a well-formed packet.
	ErrFrame = errors.New("solo: malformed response frame")
	// ErrMismatch is returned when a response answers a different address
	// or command than the one requested.
	ErrMismatch = errors.New("solo: response does not match request")
	// ErrAbnormal is returned when the controller answers with its error
	// payload.
	ErrAbnormal = errors.New("solo: controller reported an abnormal response")
)
