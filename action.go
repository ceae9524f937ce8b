package z80

// actionKind tags the handful of deferred operations the T-state queue can
// carry. Only the variants the supported opcode surface actually needs are
// present; adding an opcode that needs a new shape means adding a case here,
// not overloading an existing one.
type actionKind uint8

const (
	actNone actionKind = iota
	actDecode
	actIncR
	actInc16
	actDec16
	actAssign16
	actDataIn8
	actAdd16Imm8
)

// action is a deferred register mutation, resolved against the owning CPU
// at T-state retirement rather than carrying a pointer into it.
type action struct {
	kind  actionKind
	dst8  reg8ID
	dst16 reg16ID
	src8  reg8ID
	src16 reg16ID
}

func actionNone() action { return action{kind: actNone} }

func actionDecode() action { return action{kind: actDecode} }

func actionIncR() action { return action{kind: actIncR} }

func actionInc16(r reg16ID) action { return action{kind: actInc16, dst16: r} }

func actionDec16(r reg16ID) action { return action{kind: actDec16, dst16: r} }

func actionAssign16(dst, src reg16ID) action {
	return action{kind: actAssign16, dst16: dst, src16: src}
}

func actionDataIn8(dst reg8ID) action { return action{kind: actDataIn8, dst8: dst} }

func actionAdd16Imm8(dst reg16ID, src reg8ID) action {
	return action{kind: actAdd16Imm8, dst16: dst, src8: src}
}

// run applies the action to c. Called once per T-state, at retirement.
func (a action) run(c *CPU) {
	switch a.kind {
	case actNone:
	case actDecode:
		c.decode()
	case actIncR:
		c.reg.incR()
	case actInc16:
		c.set16(a.dst16, c.get16(a.dst16)+1)
	case actDec16:
		c.set16(a.dst16, c.get16(a.dst16)-1)
	case actAssign16:
		c.set16(a.dst16, c.get16(a.src16))
	case actDataIn8:
		c.set8(a.dst8, c.dataLatch)
	case actAdd16Imm8:
		d := int32(int16(c.get16(a.dst16)))
		o := int32(int8(c.get8(a.src8)))
		c.set16(a.dst16, uint16(d+o))
	}
}
