package parts

import (
	"strconv"

	"github.com/valsim/keylock/logic"
)

// EqConstN returns a N-bits comparator against a hardwired constant.
// The constant is burned into the part at build time; bit 0 of want is
// compared against in[0].
//
//	Inputs: in[bits]
//	Outputs: out
//	Function: out = (in == want)
//
func EqConstN(bits int, want uint64) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    "EQC" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: []string{pOut},
		Mount: func(s *logic.Socket) []logic.Component {
			in := s.Bus(pIn, bits)
			out := s.Pin(pOut)
			return []logic.Component{
				func(c *logic.Circuit) {
					for i, pin := range in {
						if c.Get(pin) != (want&(1<<uint(i)) != 0) {
							c.Set(out, false)
							return
						}
					}
					c.Set(out, true)
				}}
		}}).NewPart
}

// EqN returns a N-bits bus comparator.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out
//	Function: out = (a == b)
//
func EqN(bits int) logic.NewPartFn {
	return (&logic.PartSpec{
		Name:    "EQ" + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: []string{pOut},
		Mount: func(s *logic.Socket) []logic.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			out := s.Pin(pOut)
			return []logic.Component{
				func(c *logic.Circuit) {
					for i := range a {
						if c.Get(a[i]) != c.Get(b[i]) {
							c.Set(out, false)
							return
						}
					}
					c.Set(out, true)
				}}
		}}).NewPart
}
