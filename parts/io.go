package parts

import (
	"strconv"

	"github.com/valsim/keylock/logic"
)

// Uint64 returns the pins as a uint64. Pin 0 is the lsb.
//
func Uint64(c *logic.Circuit, pins []int) uint64 {
	var out uint64
	for bit := range pins {
		if c.Get(pins[bit]) {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetUint64 sets the pins to the given uint64 value.
//
func SetUint64(c *logic.Circuit, pins []int, v uint64) {
	for bit := range pins {
		c.Set(pins[bit], v&(1<<uint(bit)) != 0)
	}
}

// Input creates a function based input.
//
//	Outputs: out
//	Function: out = f()
//
func Input(f func() bool) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    "INPUT",
		Inputs:  nil,
		Outputs: []string{pOut},
		Mount: func(s *logic.Socket) []logic.Component {
			pin := s.Pin(pOut)
			return []logic.Component{
				func(c *logic.Circuit) {
					c.Set(pin, f())
				},
			}
		}}).NewPart
}

// Output creates an output or probe. The f function is called with the
// named pin state on every circuit update.
//
//	Inputs: in
//	Function: f(in)
//
func Output(f func(bool)) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    "OUTPUT",
		Inputs:  []string{pIn},
		Outputs: nil,
		Mount: func(s *logic.Socket) []logic.Component {
			in := s.Pin(pIn)
			return []logic.Component{
				func(c *logic.Circuit) { f(c.Get(in)) },
			}
		}}).NewPart
}

// InputN creates an input bus of the given bits size.
//
//	Outputs: out[bits]
//	Function: out = f()
//
func InputN(bits int, f func() uint64) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    "INPUT" + strconv.Itoa(bits),
		Inputs:  nil,
		Outputs: bus(bits, pOut),
		Mount: func(s *logic.Socket) []logic.Component {
			pins := s.Bus(pOut, bits)
			return []logic.Component{func(c *logic.Circuit) {
				SetUint64(c, pins, f())
			}}
		}}).NewPart
}

// OutputN creates an output bus of the given bits size.
//
//	Inputs: in[bits]
//	Function: f(in)
//
func OutputN(bits int, f func(uint64)) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    "OUTPUT" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: nil,
		Mount: func(s *logic.Socket) []logic.Component {
			pins := s.Bus(pIn, bits)
			return []logic.Component{func(c *logic.Circuit) {
				f(Uint64(c, pins))
			}}
		}}).NewPart
}
