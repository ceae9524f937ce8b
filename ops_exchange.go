package z80

func init() {
	opcodeTable[0x08] = opEXAFAF
	opcodeTable[0xEB] = opEXDEHL
	opcodeTable[0xD9] = opEXX
	opcodeTable[0xE3] = opEXISPIHL
}

// opEXAFAF swaps AF with the alternate bank's AF'. A pure register swap:
// no bus activity, no queued T-states beyond the M1 fetch.
func opEXAFAF(c *CPU, _ uint8) {
	c.reg.Main.AF, c.reg.Alt.AF = c.reg.Alt.AF, c.reg.Main.AF
}

// opEXDEHL swaps DE and HL.
func opEXDEHL(c *CPU, _ uint8) {
	c.reg.Main.DE, c.reg.Main.HL = c.reg.Main.HL, c.reg.Main.DE
}

// opEXX swaps BC, DE, and HL with their alternate-bank counterparts.
func opEXX(c *CPU, _ uint8) {
	c.reg.Main.BC, c.reg.Alt.BC = c.reg.Alt.BC, c.reg.Main.BC
	c.reg.Main.DE, c.reg.Alt.DE = c.reg.Alt.DE, c.reg.Main.DE
	c.reg.Main.HL, c.reg.Alt.HL = c.reg.Alt.HL, c.reg.Main.HL
}

// opEXISPIHL implements EX (SP),HL: swap HL with the word at the top of
// the stack. WZ stages the value read from the stack; BUF stages SP+1
// computed ahead of the reads, matching how the real part generates its
// second read address before the first read retires.
func opEXISPIHL(c *CPU, _ uint8) {
	c.reg.BUF = c.reg.SP + 1

	c.addM23Read(reg16SP, regZ, actionNone())
	c.addM23Read(reg16BUF, regW, actionNone())
	c.extendM(actionNone())
	c.addM45Write(reg16BUF, regH, actionNone())
	c.addM45Write(reg16SP, regL, actionNone())
	c.extendM(actionAssign16(reg16HL, reg16WZ))
	c.extendM(actionNone())
}
