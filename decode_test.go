package z80

import (
	"reflect"
	"testing"
)

// TestUnimplementedOpcodesAreSilentNoOps pins down the documented boundary
// of the supported surface: anything outside it costs exactly the four M1
// T-states of the fetch and leaves every register untouched except PC and
// R, which the fetch itself advances.
func TestUnimplementedOpcodesAreSilentNoOps(t *testing.T) {
	cases := []struct {
		name   string
		opcode uint8
	}{
		{"prefix CB", PrefixCB},
		{"prefix DD", PrefixDD},
		{"prefix ED", PrefixED},
		{"prefix FD", PrefixFD},
		{"ALU ADD A,B", 0x80},
		{"conditional jump JR NZ", 0x20},
		{"stack op PUSH BC", 0xC5},
		{"stack op POP BC", 0xC1},
		{"RETI-shaped opcode", 0xC9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if opcodeTable[tc.opcode] != nil {
				t.Skipf("opcode %#02x is registered; not part of the excluded surface", tc.opcode)
			}

			c := New()
			before := c.reg
			want := before
			want.PC = 1
			want.incR()
			bus := newMemBus(tc.opcode)

			bus.run(c, 4)

			if c.reg != want {
				t.Fatalf("registers changed on an unimplemented opcode beyond the fetch's PC/R advance: before=%+v after=%+v", before, c.reg)
			}
			if c.PC() != 1 {
				t.Fatalf("PC = %d, want 1 (fetch still advances PC)", c.PC())
			}
			if c.Ticks() != 4 {
				t.Fatalf("Ticks = %d, want 4", c.Ticks())
			}
		})
	}
}

func TestLDrrTableSkipsHALTAndIndirectForms(t *testing.T) {
	fn := func(f func(*CPU, uint8)) uintptr { return reflect.ValueOf(f).Pointer() }

	if opcodeTable[0x76] == nil || fn(opcodeTable[0x76]) != fn(opHALT) {
		t.Fatalf("0x76 must be registered as HALT")
	}

	// Every (HL)-source or (HL)-destination slot in the LD r,r' block must
	// route through the memory-cycle handlers, not the direct-copy one.
	for code := uint8(0); code < 8; code++ {
		readOp := 0x40 | code<<3 | 6
		if code != 6 {
			if opcodeTable[readOp] == nil || fn(opcodeTable[readOp]) != fn(opLDrIHLI) {
				t.Fatalf("opcode %#02x (LD r,(HL)) not registered to the memory-read handler", readOp)
			}
		}
		writeOp := 0x40 | 6<<3 | code
		if code != 6 {
			if opcodeTable[writeOp] == nil || fn(opcodeTable[writeOp]) != fn(opLDIHLIr) {
				t.Fatalf("opcode %#02x (LD (HL),r) not registered to the memory-write handler", writeOp)
			}
		}
	}
}
