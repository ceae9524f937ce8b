package z80

// tstate is one entry in the CPU's pending-bus-transaction queue: the
// signals to publish, which registers (if any) drive the address and data
// latches, and the action to run at retirement. reg16None/regNone mean
// "leave the latch as it is" — the bus value simply persists from the
// previous T-state, which is how multi-T-state memory cycles hold their
// address steady across the WAIT-sampling window.
type tstate struct {
	signals signalWord
	addr    reg16ID
	data    reg8ID
	act     action
}
