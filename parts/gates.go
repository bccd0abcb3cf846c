// Package parts provides the library of reusable parts that the
// key-check netlist is built from: logic gates, bus gates, reducers, a
// hardwired comparator, a flip-flop and function based I/O parts.
//
package parts

import (
	"strconv"

	"github.com/valsim/keylock/logic"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pOut = "out"
)

// make a bus name list
func bus(bits int, names ...string) []string {
	b := make([]string, len(names)*bits)
	for i, n := range names {
		for j := 0; j < bits; j++ {
			b[i*bits+j] = logic.BusPinName(n, j)
		}
	}
	return b
}

var notGate = logic.PartSpec{Name: "NOT", Inputs: []string{pIn}, Outputs: []string{pOut},
	Mount: func(s *logic.Socket) []logic.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []logic.Component{
			func(c *logic.Circuit) { c.Set(out, !c.Get(in)) },
		}
	},
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(w string) logic.Part {
	return notGate.NewPart(w)
}

// other gates
type gate func(a, b bool) bool

func (g gate) mount(s *logic.Socket) []logic.Component {
	a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
	return []logic.Component{
		func(c *logic.Circuit) { c.Set(out, g(c.Get(a), c.Get(b))) },
	}
}

func newGate(name string, fn func(a, b bool) bool) *logic.PartSpec {
	return &logic.PartSpec{
		Name:    name,
		Inputs:  gateIn,
		Outputs: gateOut,
		Mount:   gate(fn).mount,
	}
}

var (
	gateIn  = []string{pA, pB}
	gateOut = []string{pOut}

	and  = newGate("AND", func(a, b bool) bool { return a && b })
	nand = newGate("NAND", func(a, b bool) bool { return !(a && b) })
	or   = newGate("OR", func(a, b bool) bool { return a || b })
	nor  = newGate("NOR", func(a, b bool) bool { return !(a || b) })
	xor  = newGate("XOR", func(a, b bool) bool { return a && !b || !a && b })
	xnor = newGate("XNOR", func(a, b bool) bool { return a && b || !a && !b })
)

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(w string) logic.Part { return and.NewPart(w) }

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func Nand(w string) logic.Part { return nand.NewPart(w) }

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(w string) logic.Part { return or.NewPart(w) }

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(w string) logic.Part { return nor.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
func Xor(w string) logic.Part { return xor.NewPart(w) }

// Xnor returns a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
func Xnor(w string) logic.Part { return xnor.NewPart(w) }

// NotN returns a N-bits NOT gate.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = !in[i] }
//
func NotN(bits int) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    "NOT" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: bus(bits, pOut),
		Mount: func(s *logic.Socket) []logic.Component {
			ins := s.Bus(pIn, bits)
			outs := s.Bus(pOut, bits)
			return []logic.Component{func(c *logic.Circuit) {
				for i, pin := range ins {
					c.Set(outs[i], !c.Get(pin))
				}
			}}
		}}).NewPart
}

type gateN struct {
	bits int
	fn   func(bool, bool) bool
}

func (g *gateN) mount(s *logic.Socket) []logic.Component {
	a, b, out := s.Bus(pA, g.bits), s.Bus(pB, g.bits), s.Bus(pOut, g.bits)
	return []logic.Component{
		func(c *logic.Circuit) {
			for i := range a {
				c.Set(out[i], g.fn(c.Get(a[i]), c.Get(b[i])))
			}
		},
	}
}

// GateN returns a N-bits logic gate.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = fn(a[i], b[i]) }
//
func GateN(name string, bits int, fn func(a, b bool) bool) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    name + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: bus(bits, pOut),
		Mount:   (&gateN{bits, fn}).mount,
	}).NewPart
}

// AndN returns a N-bits AND gate.
//
func AndN(bits int) logic.NewPartFn {
	return GateN("AND", bits, func(a, b bool) bool { return a && b })
}

// OrN returns a N-bits OR gate.
//
func OrN(bits int) logic.NewPartFn {
	return GateN("OR", bits, func(a, b bool) bool { return a || b })
}

// XorN returns a N-bits XOR gate.
//
func XorN(bits int) logic.NewPartFn {
	return GateN("XOR", bits, func(a, b bool) bool { return a && !b || !a && b })
}

// OrNWay returns a N-Way OR gate.
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = in[0] || in[1] || ... || in[ways-1]
//
func OrNWay(ways int) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    "OR" + strconv.Itoa(ways) + "Way",
		Inputs:  bus(ways, pIn),
		Outputs: []string{pOut},
		Mount: func(s *logic.Socket) []logic.Component {
			in := s.Bus(pIn, ways)
			out := s.Pin(pOut)
			return []logic.Component{
				func(c *logic.Circuit) {
					for _, i := range in {
						if c.Get(i) {
							c.Set(out, true)
							return
						}
					}
					c.Set(out, false)
				}}
		}}).NewPart
}

// AndNWay returns a N-Way AND gate.
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = in[0] && in[1] && ... && in[ways-1]
//
func AndNWay(ways int) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    "AND" + strconv.Itoa(ways) + "Way",
		Inputs:  bus(ways, pIn),
		Outputs: []string{pOut},
		Mount: func(s *logic.Socket) []logic.Component {
			in := s.Bus(pIn, ways)
			out := s.Pin(pOut)
			return []logic.Component{
				func(c *logic.Circuit) {
					for _, i := range in {
						if !c.Get(i) {
							c.Set(out, false)
							return
						}
					}
					c.Set(out, true)
				}}
		}}).NewPart
}
