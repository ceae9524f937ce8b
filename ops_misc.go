package z80

func init() {
	opcodeTable[0x00] = opNOP
	opcodeTable[0x76] = opHALT
	opcodeTable[0xF9] = opLDSPHL
}

// opNOP does nothing beyond the four M1 T-states already charged for the
// fetch. Registered explicitly (rather than left nil) so it reads as an
// implemented opcode, not an unsupported one.
func opNOP(c *CPU, _ uint8) {}

// opHALT switches the scheduler's filler to addHALTNOP: every subsequent
// machine cycle reads from PC (one past the HALT byte) without advancing PC
// or decoding the byte read. There is no interrupt path; the CPU stays halted
// until the host replaces it or restores a non-halted state via Deserialize.
func opHALT(c *CPU, _ uint8) {
	c.nextM1 = (*CPU).addHALTNOP
	c.halted = true
}

// opLDSPHL implements LD SP,HL: a direct register copy, no bus activity
// beyond the M1 fetch.
func opLDSPHL(c *CPU, _ uint8) {
	c.reg.SP = c.reg.Main.HL
}
