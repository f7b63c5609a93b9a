package solo

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// UART is a Device connected over a serial port.
type UART struct {
	port    io.ReadWriteCloser
	address byte
}

var _ Device = (*UART)(nil)

// Open opens the serial port and returns a UART addressing the controller
// at address. No read timeout is set: a silent controller blocks reads.
func Open(port string, address byte, baud BaudRate) (*UART, error) {
	if baud.Bits() == 0 {
		return nil, fmt.Errorf("invalid baud rate %v", baud)
	}

	p, err := serial.Open(port, &serial.Mode{
		BaudRate: baud.Bits(),
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %q: %w", port, err)
	}

	return newUART(p, address), nil
}

func newUART(port io.ReadWriteCloser, address byte) *UART {
	return &UART{port: port, address: address}
}

// Close closes the underlying port.
func (u *UART) Close() error {
	return u.port.Close()
}

// QuadratureCurrentIqFeedback implements Device.
func (u *UART) QuadratureCurrentIqFeedback() Reading {
	p, err := u.read(CmdReadQuadratureCurrentIq)
	if err != nil {
		return Reading{Err: err}
	}
	return Reading{Value: p.fixed()}
}

// SpeedFeedback implements Device.
func (u *UART) SpeedFeedback() Reading {
	p, err := u.read(CmdReadSpeedFeedback)
	if err != nil {
		return Reading{Err: err}
	}
	return Reading{Value: float64(p.int32())}
}

func (u *UART) read(cmd Command) (packet, error) {
	req := packet{address: u.address, command: cmd}.encode()
	if _, err := u.port.Write(req[:]); err != nil {
		return packet{}, fmt.Errorf("failed to write command 0x%02X: %w", byte(cmd), err)
	}

	var resp [packetSize]byte
	if _, err := io.ReadFull(u.port, resp[:]); err != nil {
		return packet{}, fmt.Errorf("failed to read response to 0x%02X: %w", byte(cmd), err)
	}

	p, err := decodePacket(resp)
	if err != nil {
		return packet{}, err
	}

	if p.address != u.address || p.command != cmd {
		return packet{}, fmt.Errorf("%w: got address %d command 0x%02X",
			ErrMismatch, p.address, byte(p.command))
	}

	if p.isAbnormal() {
		return packet{}, ErrAbnormal
	}

	return p, nil
}
