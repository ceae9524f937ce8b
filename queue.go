package z80

// queueCapacity bounds the ring buffer of pending T-states. It must stay a
// power of two for the mask-based wraparound below. The longest lowered
// sequence in this module is EX (SP),HL at 19 T-states, which leaves at
// most 17 entries pending at once (the last two M1 T-states plus the 15 its
// decode appends), well under this bound.
const queueCapacity = 32

// tstateQueue is a fixed-capacity ring buffer of tstate entries. Opcode
// lowering appends to it; Tick consumes from the front one entry at a time.
type tstateQueue struct {
	items [queueCapacity]tstate
	head  uint8
	tail  uint8
}

func (q *tstateQueue) mask(v uint8) uint8 { return v & (queueCapacity - 1) }

// add appends t to the queue. Panics if the queue is full: every lowered
// instruction sequence is known at compile time to fit well inside
// queueCapacity, so overflow means a programming error, not a runtime
// condition to recover from.
func (q *tstateQueue) add(t tstate) {
	next := q.mask(q.tail + 1)
	if next == q.head {
		panic("z80: tstate queue overflow")
	}
	q.items[q.tail] = t
	q.tail = next
}

func (q *tstateQueue) get() tstate { return q.items[q.head] }

func (q *tstateQueue) pop() { q.head = q.mask(q.head + 1) }

func (q *tstateQueue) empty() bool { return q.head == q.tail }

// addM1 appends the four T-states of an opcode-fetch machine cycle: publish
// PC and increment it, sample the opcode under MREQ|RD|WSAMP, publish the
// refresh address and decode, then assert the refresh strobe and bump R.
func (c *CPU) addM1() {
	c.queue.add(tstate{signals: signalWord(M1), addr: reg16PC, act: actionInc16(reg16PC)})
	c.queue.add(tstate{signals: signalWord(M1 | MREQ | RD | WSAMP)})
	c.queue.add(tstate{signals: signalWord(RFSH), addr: reg16IR, act: actionDecode()})
	c.queue.add(tstate{signals: signalWord(MREQ | RFSH), act: actionIncR()})
}

// addHALTNOP appends the same four T-states as addM1 but with HALT asserted
// throughout, PC left untouched, and no decode action: the read cycle
// publishes PC (already one past the HALT byte) and whatever byte comes back
// is never decoded, so the program does not advance.
func (c *CPU) addHALTNOP() {
	c.queue.add(tstate{signals: signalWord(HALT | M1), addr: reg16PC})
	c.queue.add(tstate{signals: signalWord(HALT | M1 | MREQ | RD | WSAMP)})
	c.queue.add(tstate{signals: signalWord(HALT | RFSH), addr: reg16IR})
	c.queue.add(tstate{signals: signalWord(HALT | MREQ | RFSH), act: actionIncR()})
}

// addM23Read appends the three T-states of a memory-read machine cycle:
// publish srcAddr (running firstOp, typically inc(PC) or nothing), sample
// under MREQ|RD|WSAMP, then latch the sampled byte into dest.
func (c *CPU) addM23Read(srcAddr reg16ID, dest reg8ID, firstOp action) {
	c.queue.add(tstate{addr: srcAddr, act: firstOp})
	c.queue.add(tstate{signals: signalWord(MREQ | RD | WSAMP)})
	c.queue.add(tstate{act: actionDataIn8(dest)})
}

// addM45Write appends the three T-states of a memory-write machine cycle:
// publish destAddr, drive srcData onto the bus and run op, then assert
// MREQ|WR. Unlike a read cycle, a write carries no WSAMP T-state: writes
// are never WAIT-stretched in this model, so op here always runs exactly
// once regardless of how long the bus takes to settle.
func (c *CPU) addM45Write(destAddr reg16ID, srcData reg8ID, op action) {
	c.queue.add(tstate{addr: destAddr})
	c.queue.add(tstate{signals: signalWord(MREQ), data: srcData, act: op})
	c.queue.add(tstate{signals: signalWord(MREQ | WR)})
}

// addM3alu appends cycles internal T-states with no bus activity; finalOp
// runs on the last one.
func (c *CPU) addM3alu(cycles uint8, finalOp action) {
	for i := uint8(0); i < cycles; i++ {
		if i == cycles-1 {
			c.queue.add(tstate{act: finalOp})
		} else {
			c.queue.add(tstate{})
		}
	}
}

// extendM appends a single idle T-state, optionally running op.
func (c *CPU) extendM(op action) {
	c.queue.add(tstate{act: op})
}
