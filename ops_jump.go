package z80

func init() {
	opcodeTable[0x18] = opJRn
}

// opJRn implements JR n: read the signed displacement (advancing PC past
// it), then spend five internal T-states computing PC+displacement through
// BUF and WZ exactly as the real part's address-generation path does,
// landing the result back in PC and WZ.
func opJRn(c *CPU, _ uint8) {
	c.addM23Read(reg16PC, regDataLatch, actionInc16(reg16PC))
	c.addM3alu(2, actionAssign16(reg16BUF, reg16PC))
	c.addM3alu(1, actionAdd16Imm8(reg16BUF, regDataLatch))
	c.addM3alu(1, actionAssign16(reg16WZ, reg16BUF))
	c.addM3alu(1, actionAssign16(reg16PC, reg16WZ))
}
