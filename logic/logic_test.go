package logic_test

import (
	"strings"
	"testing"

	"github.com/valsim/keylock/logic"
	"github.com/valsim/keylock/parts"
)

const testTPC = 16

func testGate(t *testing.T, name string, gate logic.NewPartFn, result [][]bool) {
	t.Helper()
	part := gate("").PartSpec // dummy part, just to get to the partspec
	inputs := make([]bool, len(part.Inputs))
	outputs := make([]bool, len(part.Outputs))
	var w strings.Builder
	ps := make(logic.Parts, 0, len(part.Inputs)+len(part.Outputs)+1)
	for i, n := range part.Inputs {
		w.WriteByte(',')
		w.WriteString(n)
		w.WriteByte('=')
		w.WriteString(n)
		in := &inputs[i]
		ps = append(ps, parts.Input(func() bool { return *in })("out="+n))
	}
	for i, n := range part.Outputs {
		w.WriteByte(',')
		w.WriteString(n)
		w.WriteByte('=')
		w.WriteString(n)
		out := &outputs[i]
		ps = append(ps, parts.Output(func(v bool) { *out = v })("in="+n))
	}
	wr := strings.TrimPrefix(w.String(), ",")
	ps = append(ps, gate(wr))
	c, err := logic.NewCircuit(testTPC, ps)
	if err != nil {
		t.Fatal(err)
	}

	tot := 1 << uint(len(part.Inputs))
	for i := 0; i < tot; i++ {
		for bit := range inputs {
			inputs[len(inputs)-bit-1] = i&(1<<uint(bit)) != 0
		}
		c.TickTock()
		for o, out := range outputs {
			exp := result[o][i]
			if exp != out {
				t.Errorf("%s %v = %v, got %v", part.Name, inputs, exp, out)
			}
		}
	}
}

func Test_gate_custom(t *testing.T) {
	or, err := logic.Chip("OR", "a, b", "out", logic.Parts{
		parts.Nand("a=a, b=a, out=notA"),
		parts.Nand("a=b, b=b, out=notB"),
		parts.Nand("a=notA, b=notB, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	nor, err := logic.Chip("NOR", "a, b", "out", logic.Parts{
		or("a=a, b=b, out=orAB"),
		parts.Nand("a=orAB, b=orAB, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	xor, err := logic.Chip("XOR", "a, b", "out", logic.Parts{
		parts.Nand("a=a, b=b, out=nandAB"),
		parts.Nand("a=a, b=nandAB, out=w0"),
		parts.Nand("a=b, b=nandAB, out=w1"),
		parts.Nand("a=w0, b=w1, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	xnor, err := logic.Chip("XNOR", "a, b", "out", logic.Parts{
		or("a=a, b=b, out=or"),
		parts.Nand("a=a, b=b, out=nand"),
		parts.Nand("a=or, b=nand, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	not, err := logic.Chip("NOT", "a", "out", logic.Parts{
		parts.Nand("a=a, b=a, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	mux, err := logic.Chip("MUX", "a, b, sel", "out", logic.Parts{
		parts.Not("in=sel, out=notSel"),
		parts.And("a=a, b=notSel, out=w0"),
		parts.And("a=b, b=sel, out=w1"),
		parts.Or("a=w0, b=w1, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	dmux, err := logic.Chip("DMUX", "in, sel", "a, b", logic.Parts{
		parts.Not("in=sel, out=notSel"),
		parts.And("a=in, b=notSel, out=a"),
		parts.And("a=in, b=sel, out=b"),
	})
	if err != nil {
		t.Fatal(err)
	}
	td := []struct {
		name   string
		gate   logic.NewPartFn
		result [][]bool
	}{
		{"OR", or, [][]bool{{false, true, true, true}}},
		{"NOR", nor, [][]bool{{true, false, false, false}}},
		{"XOR", xor, [][]bool{{false, true, true, false}}},
		{"XNOR", xnor, [][]bool{{true, false, false, true}}},
		{"NOT", not, [][]bool{{true, false}}},
		{"MUX", mux, [][]bool{{false, false, false, true, true, false, true, true}}},
		{"DMUX", dmux, [][]bool{{false, false, true, false}, {false, false, false, true}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			testGate(t, d.name, d.gate, d.result)
		})
	}
}

// Test a basic clock made of a Nor gate looped back on itself.
//
// The purpose of this test is to catch changes in propagation delays
// from Inputs and Outputs as well as testing loops between inputs and
// outputs.
//
func Test_clock(t *testing.T) {
	var disable, tick bool

	check := func(v bool) {
		t.Helper()
		if tick != v {
			t.Errorf("expected %v, got %v", v, tick)
		}
	}
	// wrapping the Nor into a stand-alone chip adds a layer of
	// complexity for testing purposes.
	clk, err := logic.Chip("CLK", "disable", "tick", logic.Parts{
		parts.Nor("a=disable, b=tick, out=tick"),
	})
	if err != nil {
		t.Fatal(err)
	}
	c, err := logic.NewCircuit(testTPC, logic.Parts{
		parts.Input(func() bool { return disable })("out=disable"),
		clk("disable=disable, tick=out"),
		parts.Output(func(out bool) { tick = out })("in=out"),
	})
	if err != nil {
		t.Fatal(err)
	}

	// we have two wires: "disable" and "out".
	// note that the output probe sees the Nor's output one step late.

	disable = true
	c.Step()
	check(false)
	c.Step()
	// expected signal change in the first couple of steps while the
	// initial states propagate
	check(true)
	c.Step()
	check(false)
	c.Step()
	check(false)

	disable = false
	c.Step()
	check(false)
	c.Step()
	check(false)
	c.Step()
	// the clock starts ticking now.
	check(true)
	c.Step()
	check(false)
	c.Step()
	check(true)
	disable = true
	c.Step()
	check(false)
	c.Step()
	check(true)
	c.Step()
	// the clock stops ticking now.
	check(false)
	c.Step()
	check(false)
}

func TestNewCircuit_empty(t *testing.T) {
	if _, err := logic.NewCircuit(testTPC, nil); err == nil {
		t.Fatal("expected error for empty part list")
	}
}
