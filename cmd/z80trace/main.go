// Command z80trace feeds a fixed byte program through a go-chip-z80 CPU and
// prints the bus-pin trace (tick, address, data, signals) the core
// publishes for each T-state. It exists to exercise the bus contract end to
// end; it is not a monitor, a binary loader, or a register/memory dumper.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	z80 "github.com/user-none/go-chip-z80"
)

// flatBus is the simplest possible bus master-side adapter: a byte-addressed
// memory that answers reads and records writes, driving the core purely
// through its exported pin-level accessors.
type flatBus struct {
	mem [0x10000]byte
}

func (b *flatBus) service(c *z80.CPU) {
	addr := c.Address()
	if c.Signal(z80.MREQ) && c.Signal(z80.RD) {
		c.SetData(b.mem[addr])
	}
	if c.Signal(z80.MREQ) && c.Signal(z80.WR) {
		b.mem[addr] = c.Data()
	}
}

func main() {
	var programHex string
	var start uint16
	var ticks int

	root := &cobra.Command{
		Use:   "z80trace",
		Short: "Trace the per-tick bus activity of a go-chip-z80 CPU core",
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := hex.DecodeString(programHex)
			if err != nil {
				return fmt.Errorf("invalid --program hex: %w", err)
			}

			bus := &flatBus{}
			copy(bus.mem[start:], program)

			c := z80.New()
			c.SetPC(start)

			for i := 0; i < ticks; i++ {
				c.Tick()
				bus.service(c)
				fmt.Printf("%6d  addr=%04X data=%02X signals=%04X\n",
					c.Ticks(), c.Address(), c.Data(), c.Signals())
			}
			return nil
		},
	}

	root.Flags().StringVar(&programHex, "program", "00", "program bytes as a hex string, e.g. 3e11 for LD A,0x11")
	root.Flags().Uint16Var(&start, "start", 0, "address to load the program at and start PC from")
	root.Flags().IntVar(&ticks, "ticks", 16, "number of T-states to trace")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
