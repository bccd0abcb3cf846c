package parts_test

import (
	"testing"

	"github.com/valsim/keylock/logic"
	"github.com/valsim/keylock/parts"
)

// The flip flop samples its input on the rising clock edge, so a value
// held on the input during one full cycle shows up on the output over
// the next cycle.
func TestDFF(t *testing.T) {
	var in, out uint64

	dff4, err := logic.Chip("DFF4", "in[4]", "out[4]", logic.Parts{
		parts.DFF("in=in[0], out=out[0]"),
		parts.DFF("in=in[1], out=out[1]"),
		parts.DFF("in=in[2], out=out[2]"),
		parts.DFF("in=in[3], out=out[3]"),
	})
	if err != nil {
		t.Fatal(err)
	}

	c, err := logic.NewCircuit(testTPC, logic.Parts{
		parts.InputN(4, func() uint64 { return in })("out[0..3]=i[0..3]"),
		dff4("in[0..3]=i[0..3], out[0..3]=o[0..3]"),
		parts.OutputN(4, func(v uint64) { out = v })("in[0..3]=o[0..3]"),
	})
	if err != nil {
		t.Fatal(err)
	}

	var want uint64
	for i := 15; i >= 0; i-- {
		in = uint64(i)
		c.TickTock()
		if out != want {
			t.Fatalf("bad output for input %d: expected out = %d, got %d", in, want, out)
		}
		want = uint64(i)
	}
	// input is gone, the last value must stick
	in = 0
	c.TickTock()
	if out != want {
		t.Fatalf("expected out = %d one cycle after input removal, got %d", want, out)
	}
}
