package logic_test

import (
	"testing"

	"github.com/valsim/keylock/logic"
	"github.com/valsim/keylock/parts"
)

func TestChip_errors(t *testing.T) {
	unkChip, err := logic.Chip("TESTCHIP", "a, b", "out", logic.Parts{
		// chip input a is unused
		parts.Nand("a=b, b=b, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	data := []struct {
		name  string
		in    string
		out   string
		parts logic.Parts
		err   string
	}{
		{"true_out", "a, b", "out", logic.Parts{
			parts.Nand("a=a, b=b, out=true"),
			parts.Nand("a=a, b=b, out=out"),
		}, "NAND.out:true: output pin connected to constant \"true\" input"},
		{"clk_out", "a, b", "out", logic.Parts{
			parts.Nand("a=a, b=b, out=clk"),
			parts.Nand("a=a, b=b, out=out"),
		}, "NAND.out:clk: output pin connected to clock signal"},
		{"false_out_discards", "a, b", "out", logic.Parts{
			parts.Nand("a=a, b=b, out=false"),
			parts.Nand("a=a, b=b, out=out"),
		}, ""},
		{"out_to_input", "a, b", "out", logic.Parts{
			parts.Nand("a=a, b=b, out=a"),
			parts.Nand("a=a, b=b, out=out"),
		}, "NAND.out:a: output pin already used as output or is one of the chip's input pins"},
		{"multi_out", "a, b", "out", logic.Parts{
			parts.Nand("a=a, b=b, out=x"),
			parts.Nand("a=a, b=b, out=x"),
			parts.Not("in=x, out=out"),
		}, "NAND.out:x: output pin already used as output or is one of the chip's input pins"},
		{"no_output", "a, b", "out", logic.Parts{
			parts.Nand("a=a, b=wx, out=out"),
		}, "pin wx not connected to any output"},
		{"no_input", "a, b", "out", logic.Parts{
			parts.Nand("a=a, b=b, out=foo"),
			parts.Nand("a=a, b=b, out=out"),
		}, "pin foo not connected to any input"},
		{"empty_parts", "a, b", "out", logic.Parts{}, ""},
		{"unknown_pin", "a, b", "out", logic.Parts{
			parts.Nand("a=a, typo=b, out=out"),
		}, "invalid pin name typo for part NAND"},
		{"unknown_pin_chip", "a, b", "out", logic.Parts{
			unkChip("a=a, typo=b, out=out"),
		}, "invalid pin name typo for part TESTCHIP"},
		{"unused_chip_input", "a, b", "out", logic.Parts{
			unkChip("a=a, b=b, out=out"),
		}, ""},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := logic.Chip(d.name, d.in, d.out, d.parts)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Errorf("Got error %q, expected %q", err, d.err)
			}
		})
	}
}

func TestChip_omitted_pins(t *testing.T) {
	var a, b, c, tr, f, o0, o1 int
	dummy := (&logic.PartSpec{
		Name:    "dummy",
		Inputs:  []string{"a", "b", "c", "t", "f"},
		Outputs: []string{"o0", "o1"},
		Mount: func(s *logic.Socket) []logic.Component {
			a, b, c, tr, f = s.Pin("a"), s.Pin("b"), s.Pin("c"), s.Pin("t"), s.Pin("f")
			o0, o1 = s.Pin("o0"), s.Pin("o1")
			return nil
		}}).NewPart
	wrapper, err := logic.Chip("wrapper", "wa, wb", "wo0, wo1", logic.Parts{
		dummy("a=wa, c=clk, t=true, f=false, o0=wo0"),
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = logic.NewCircuit(0, logic.Parts{wrapper("")})
	if err != nil {
		t.Fatal(err)
	}

	// 0 = cstFalse, 1 = cstTrue, 2 = cstClk, then allocated wires
	if a != 0 || b != 0 || f != 0 {
		t.Errorf("a = %v, b = %v, f = %v, all must be 0", a, b, f)
	}
	if tr != 1 {
		t.Errorf("t = %v, must be 1", tr)
	}
	if c != 2 {
		t.Errorf("c = %v, must be 2", c)
	}
	if o0 < 3 || o1 < 3 {
		t.Errorf("o0 = %v, o1 = %v, both must be allocated wires", o0, o1)
	}
}

func TestChip_fanout_to_outputs(t *testing.T) {
	gate, err := logic.Chip("FANOUT", "in", "a, b, bus[2]", logic.Parts{
		parts.Or("a=in, b=in, out=a, out=b, out=bus[0..1]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	wrapper, err := logic.Chip("FANOUT_Wrapper", "in", "o[8]", logic.Parts{
		gate("in=in, a=o[0..1], b=o[2..3], bus[0]=o[4..5], bus[1]=o[6..7]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	var out uint64
	c, err := logic.NewCircuit(testTPC, logic.Parts{
		wrapper("in=true, o[0..7]=wrapOut[0..7]"),
		parts.OutputN(8, func(v uint64) { out = v })("in[0..7]=wrapOut[0..7]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	c.TickTock()
	if out != 255 {
		t.Fatalf("out = %d != 255", out)
	}
}
