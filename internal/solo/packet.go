package solo

import "encoding/binary"

const (
	packetSize = 10

	initiator = 0xFF
	crc       = 0x00
	ending    = 0xFE

	abnormal = 0xEE
)

// Command is a UART command code.
type Command byte

const (
	CmdReadQuadratureCurrentIq Command = 0x8D
	CmdReadSpeedFeedback       Command = 0x96
)

// fixedFraction is the scale of the controller's signed fixed-point format,
// which carries 17 fractional bits.
const fixedFraction = 1 << 17

type packet struct {
	address byte
	command Command
	data    [4]byte
}

func (p packet) encode() [packetSize]byte {
	return [packetSize]byte{
		initiator, initiator,
		p.address, byte(p.command),
		p.data[0], p.data[1], p.data[2], p.data[3],
		crc, ending,
	}
}

func decodePacket(b [packetSize]byte) (packet, error) {
	if b[0] != initiator || b[1] != initiator || b[8] != crc || b[9] != ending {
		return packet{}, ErrFrame
	}

	p := packet{address: b[2], command: Command(b[3])}
	copy(p.data[:], b[4:8])

	return p, nil
}

func (p packet) isAbnormal() bool {
	return p.data == [4]byte{abnormal, abnormal, abnormal, abnormal}
}

func (p packet) int32() int32 {
	return int32(binary.BigEndian.Uint32(p.data[:]))
}

func (p packet) fixed() float64 {
	return float64(p.int32()) / fixedFraction
}
