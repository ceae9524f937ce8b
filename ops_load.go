package z80

// init registers the LD family: 8-bit register-to-register, register/(HL)
// loads, immediate loads, register-pair immediate loads, the accumulator's
// (BC)/(DE) shorthand, and the 16-bit direct-address forms for HL and A.
func init() {
	registerLDrr()
	registerLDrN()
	registerLDrpNN()

	opcodeTable[0x36] = opLDIHLIn

	opcodeTable[0x0A] = opLDAIBCI
	opcodeTable[0x1A] = opLDAIDEI
	opcodeTable[0x02] = opLDIBCIA
	opcodeTable[0x12] = opLDIDEIA

	opcodeTable[0x2A] = opLDHLInnI
	opcodeTable[0x22] = opLDInnIHL
	opcodeTable[0x3A] = opLDAInnI
	opcodeTable[0x32] = opLDInnIA
}

// registerLDrr fills the 0x40-0x7F block: LD r,r' is a direct register
// copy with no bus activity, except where either operand is (HL), which
// instead costs a memory cycle, and 0x76 which is HALT, not LD (HL),(HL).
func registerLDrr() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 | dst<<3 | src
			switch {
			case dst == 6 && src == 6:
				// 0x76: HALT, registered in ops_misc.go.
			case dst == 6:
				opcodeTable[opcode] = opLDIHLIr
			case src == 6:
				opcodeTable[opcode] = opLDrIHLI
			default:
				opcodeTable[opcode] = opLDrr
			}
		}
	}
}

func opLDrr(c *CPU, opcode uint8) {
	dst := (opcode >> 3) & 7
	src := opcode & 7
	c.set8(reg8ForCode(dst), c.get8(reg8ForCode(src)))
}

func opLDrIHLI(c *CPU, opcode uint8) {
	dst := (opcode >> 3) & 7
	c.addM23Read(reg16HL, reg8ForCode(dst), actionNone())
}

func opLDIHLIr(c *CPU, opcode uint8) {
	src := opcode & 7
	c.addM45Write(reg16HL, reg8ForCode(src), actionNone())
}

// registerLDrN fills the 0x06/0x0E/.../0x3E block: LD r,n reads the
// immediate operand following the opcode and stores it in r.
func registerLDrN() {
	for dst := uint8(0); dst < 8; dst++ {
		if dst == 6 {
			continue // 0x36: LD (HL),n, handled separately
		}
		opcodeTable[0x06|dst<<3] = opLDrN
	}
}

func opLDrN(c *CPU, opcode uint8) {
	dst := (opcode >> 3) & 7
	c.addM23Read(reg16PC, reg8ForCode(dst), actionInc16(reg16PC))
}

func opLDIHLIn(c *CPU, _ uint8) {
	c.addM23Read(reg16PC, regBFl, actionInc16(reg16PC))
	c.addM45Write(reg16HL, regBFl, actionNone())
}

// registerLDrpNN fills LD BC,nn / LD DE,nn / LD HL,nn / LD SP,nn: two
// sequential reads, low byte then high byte, each advancing PC.
func registerLDrpNN() {
	for _, opcode := range [4]uint8{0x01, 0x11, 0x21, 0x31} {
		opcodeTable[opcode] = opLDrpNN
	}
}

func opLDrpNN(c *CPU, opcode uint8) {
	lo, hi := rpForCode((opcode >> 4) & 3)
	c.addM23Read(reg16PC, lo, actionInc16(reg16PC))
	c.addM23Read(reg16PC, hi, actionInc16(reg16PC))
}

func opLDAIBCI(c *CPU, _ uint8) { c.addM23Read(reg16BC, regA, actionNone()) }
func opLDAIDEI(c *CPU, _ uint8) { c.addM23Read(reg16DE, regA, actionNone()) }
func opLDIBCIA(c *CPU, _ uint8) { c.addM45Write(reg16BC, regA, actionNone()) }
func opLDIDEIA(c *CPU, _ uint8) { c.addM45Write(reg16DE, regA, actionNone()) }

// opLDHLInnI implements LD HL,(nn): read the 16-bit address into WZ, then
// read L from (WZ) and H from (WZ+1), leaving WZ one past H's address.
func opLDHLInnI(c *CPU, _ uint8) {
	c.addM23Read(reg16PC, regZ, actionInc16(reg16PC))
	c.addM23Read(reg16PC, regW, actionInc16(reg16PC))
	c.addM23Read(reg16WZ, regL, actionInc16(reg16WZ))
	c.addM23Read(reg16WZ, regH, actionInc16(reg16WZ))
}

// opLDInnIHL implements LD (nn),HL: read the 16-bit address into WZ, then
// write L to (WZ) and H to (WZ+1).
func opLDInnIHL(c *CPU, _ uint8) {
	c.addM23Read(reg16PC, regZ, actionInc16(reg16PC))
	c.addM23Read(reg16PC, regW, actionInc16(reg16PC))
	c.addM45Write(reg16WZ, regL, actionInc16(reg16WZ))
	c.addM45Write(reg16WZ, regH, actionNone())
}

func opLDAInnI(c *CPU, _ uint8) {
	c.addM23Read(reg16PC, regZ, actionInc16(reg16PC))
	c.addM23Read(reg16PC, regW, actionInc16(reg16PC))
	c.addM23Read(reg16WZ, regA, actionInc16(reg16WZ))
}

func opLDInnIA(c *CPU, _ uint8) {
	c.addM23Read(reg16PC, regZ, actionInc16(reg16PC))
	c.addM23Read(reg16PC, regW, actionInc16(reg16PC))
	c.addM45Write(reg16WZ, regA, actionInc16(reg16WZ))
}
