package z80

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// serializeVersion is bumped whenever the encoded layout changes, so a
// future decoder can reject or migrate an old save state instead of
// silently misreading it.
const serializeVersion = 1

// ErrShortBuffer is returned by Deserialize when the input is too small to
// hold a complete, version-tagged snapshot.
var ErrShortBuffer = errors.New("z80: short buffer")

// ErrUnsupportedVersion is returned by Deserialize when the input's version
// byte does not match a layout this build understands.
var ErrUnsupportedVersion = errors.New("z80: unsupported save-state version")

// Serialize encodes the CPU's architectural register state into a flat
// byte slice. It is only meaningful to call between instructions (queue
// empty, Tick about to start a fresh M1): the pending T-state queue itself
// is not captured, matching a save state taken at an instruction boundary.
func (c *CPU) Serialize() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(serializeVersion)

	regs := []regPair{
		c.reg.Main.AF, c.reg.Main.BC, c.reg.Main.DE, c.reg.Main.HL,
		c.reg.Alt.AF, c.reg.Alt.BC, c.reg.Alt.DE, c.reg.Alt.HL,
		c.reg.IX, c.reg.IY, c.reg.WZ, c.reg.SP, c.reg.IR, c.reg.BUF,
	}
	for _, r := range regs {
		binary.Write(buf, binary.BigEndian, uint16(r))
	}
	binary.Write(buf, binary.BigEndian, c.reg.PC)
	binary.Write(buf, binary.BigEndian, c.ticks)

	var halted uint8
	if c.halted {
		halted = 1
	}
	buf.WriteByte(halted)

	return buf.Bytes()
}

// Deserialize restores a CPU's register state from a buffer produced by
// Serialize. The T-state queue is reset to empty so the next Tick starts a
// fresh fetch cycle, matching the instruction-boundary contract Serialize
// documents.
func (c *CPU) Deserialize(data []byte) error {
	const fixedRegs = 14 // AF BC DE HL, AF' BC' DE' HL', IX IY WZ SP IR BUF
	const wantLen = 1 + fixedRegs*2 + 2 + 8 + 1
	if len(data) < wantLen {
		return ErrShortBuffer
	}

	r := bytes.NewReader(data)

	version, err := r.ReadByte()
	if err != nil {
		return ErrShortBuffer
	}
	if version != serializeVersion {
		return ErrUnsupportedVersion
	}

	dests := []*regPair{
		&c.reg.Main.AF, &c.reg.Main.BC, &c.reg.Main.DE, &c.reg.Main.HL,
		&c.reg.Alt.AF, &c.reg.Alt.BC, &c.reg.Alt.DE, &c.reg.Alt.HL,
		&c.reg.IX, &c.reg.IY, &c.reg.WZ, &c.reg.SP, &c.reg.IR, &c.reg.BUF,
	}
	for _, d := range dests {
		var v uint16
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return ErrShortBuffer
		}
		*d = regPair(v)
	}

	if err := binary.Read(r, binary.BigEndian, &c.reg.PC); err != nil {
		return ErrShortBuffer
	}
	if err := binary.Read(r, binary.BigEndian, &c.ticks); err != nil {
		return ErrShortBuffer
	}

	halted, err := r.ReadByte()
	if err != nil {
		return ErrShortBuffer
	}

	c.queue = tstateQueue{}
	c.inSignals = 0
	c.signals = 0
	c.addrLatch = 0
	c.dataLatch = 0

	c.halted = halted != 0
	if c.halted {
		c.nextM1 = (*CPU).addHALTNOP
	} else {
		c.nextM1 = (*CPU).addM1
	}

	return nil
}
