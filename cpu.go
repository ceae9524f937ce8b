package z80

// CPU is the Z80 T-state scheduler, decoder, and register file, modeled as
// a bus peripheral: a host drives it one Tick() at a time, reading and
// writing the published pins between calls exactly as real glue logic would
// around the physical part.
type CPU struct {
	reg Registers

	inSignals signalWord // host-driven input pins (principally WAIT)
	signals   signalWord // published output pins for the current T-state

	addrLatch uint16
	dataLatch uint8

	ticks uint64

	queue  tstateQueue
	nextM1 func(*CPU) // addM1 normally; addHALTNOP while HALT is latched
	halted bool       // mirrors nextM1's choice, kept for Serialize
}

// New returns a CPU in its reset-equivalent state: all registers zero, no
// signals asserted, an empty T-state queue, fetch cycles enabled.
func New() *CPU {
	c := &CPU{}
	c.nextM1 = (*CPU).addM1
	return c
}

// SetData sets the byte the host is presenting on the data bus. The host
// calls this in response to a read cycle (MREQ|RD or IORQ|RD asserted)
// before the T-state that samples it (WSAMP) advances.
func (c *CPU) SetData(v uint8) { c.dataLatch = v }

// Data returns the byte currently on the data bus, valid for the host to
// read during a write cycle (MREQ|WR or IORQ|WR asserted).
func (c *CPU) Data() uint8 { return c.dataLatch }

// Address returns the 16-bit value currently published on the address bus.
func (c *CPU) Address() uint16 { return c.addrLatch }

// Signal reports whether sig is asserted in the current T-state's output.
func (c *CPU) Signal(sig Signal) bool { return c.signals.has(sig) }

// Signals returns the full output signal word for the current T-state.
func (c *CPU) Signals() uint16 { return uint16(c.signals) }

// SetSignal asserts a host-driven input pin (WAIT).
func (c *CPU) SetSignal(sig Signal) { c.inSignals.set(sig) }

// RstSignal deasserts a host-driven input pin.
func (c *CPU) RstSignal(sig Signal) { c.inSignals.clear(sig) }

// SetPC loads the program counter directly; used by a host to start
// execution at a chosen address.
func (c *CPU) SetPC(pc uint16) { c.reg.PC = pc }

// PC returns the current program counter.
func (c *CPU) PC() uint16 { return c.reg.PC }

// Ticks returns the number of Tick() calls processed so far.
func (c *CPU) Ticks() uint64 { return c.ticks }

// Registers returns a copy of the CPU's register file, for inspection by
// tests and save-state code.
func (c *CPU) Registers() Registers { return c.reg }

// Tick advances the CPU by exactly one T-state. If the queue is empty, a
// fresh machine cycle is scheduled first (addM1, or addHALTNOP while
// halted). The head T-state's signals are published, its address/data
// selectors (if any) drive the latches, and its action runs. The head is
// then retired unless this was a WSAMP T-state and WAIT is currently held,
// in which case the bus state this tick published persists unchanged into
// the next Tick() call.
func (c *CPU) Tick() {
	if c.queue.empty() {
		c.nextM1(c)
	}

	t := c.queue.get()

	c.signals = t.signals | c.inSignals
	if t.addr != reg16None {
		c.addrLatch = c.get16(t.addr)
	}
	if t.data != regNone {
		c.dataLatch = c.get8(t.data)
	}
	t.act.run(c)

	if !(t.signals.has(WSAMP) && c.inSignals.has(WAIT)) {
		c.queue.pop()
	}

	c.ticks++
}

// decode reads the fetched opcode from the data latch and dispatches it
// through the lowering table. An unregistered opcode is a silent no-op: the
// four M1 T-states already charged are the full cost of the instruction.
func (c *CPU) decode() {
	if handler := opcodeTable[c.dataLatch]; handler != nil {
		handler(c, c.dataLatch)
	}
}
