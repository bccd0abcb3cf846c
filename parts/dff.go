package parts

import "github.com/valsim/keylock/logic"

// DFF returns a clocked data flip flop.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(w string) logic.Part {
	return (&logic.PartSpec{
		Name:    "DFF",
		Inputs:  []string{pIn},
		Outputs: []string{pOut},
		Mount: func(s *logic.Socket) []logic.Component {
			in, out := s.Pin(pIn), s.Pin(pOut)
			var curOut bool
			return []logic.Component{
				func(c *logic.Circuit) {
					// rising edge?
					if c.AtTick() {
						curOut = c.Get(in)
					}
					c.Set(out, curOut)
				}}
		}}).NewPart(w)
}
