package z80

// init registers the 16-bit INC/DEC family: INC/DEC BC/DE/HL/SP. Both take
// two extra internal T-states beyond the M1 fetch, with no bus activity;
// the real part spends these settling the incrementer/decrementer rather
// than touching memory.
func init() {
	incOpcodes := [4]uint8{0x03, 0x13, 0x23, 0x33}
	decOpcodes := [4]uint8{0x0B, 0x1B, 0x2B, 0x3B}

	for code := uint8(0); code < 4; code++ {
		p := rp16ForCode(code)
		opcodeTable[incOpcodes[code]] = func(c *CPU, _ uint8) {
			c.extendM(actionInc16(p))
			c.extendM(actionNone())
		}
		opcodeTable[decOpcodes[code]] = func(c *CPU, _ uint8) {
			c.extendM(actionDec16(p))
			c.extendM(actionNone())
		}
	}
}
