package logic

// A Component is a part's updater in a running circuit. It reads and
// writes wire states through the Circuit's Get and Set methods.
//
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. MountFn's should query the
// socket for assigned pin numbers and return closures around these pin
// numbers.
//
// For example, a Not gate can be defined like this:
//
//	not := &PartSpec{
//		Name:    "NOT",
//		Inputs:  []string{"in"},
//		Outputs: []string{"out"},
//		Mount: func(s *Socket) []Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []Component{
//				func(c *Circuit) { c.Set(out, !c.Get(in)) },
//			}
//		}}
//
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	Inputs []string
	// Output pin names. Must be distinct pin names.
	Outputs []string
	// Pinout maps the input and output pin names (public interface) of a
	// part to internal (private) names. If nil, the Inputs and Outputs
	// values will be used and mapped one to one. Most custom part
	// implementations should leave it nil.
	Pinout W

	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart wraps p together with the given connection description into a
// Part ready for use in a Chip or a Circuit. It panics if the
// description does not parse: connection strings are written by the
// programmer, not the operator.
//
func (p *PartSpec) NewPart(connections string) Part {
	ex, err := ParseConnections(connections)
	if err != nil {
		panic(err)
	}
	if p.Pinout == nil {
		p.Pinout = make(W, len(p.Inputs)+len(p.Outputs))
		for _, i := range p.Inputs {
			p.Pinout[i] = i
		}
		for _, o := range p.Outputs {
			p.Pinout[o] = o
		}
	}
	return Part{p, ex}
}

// A NewPartFn is a function that takes a connection description and
// returns a new Part. See ParseConnections for the description syntax.
//
type NewPartFn func(connections string) Part

// A Part wraps a part specification together with its connections
// within a host chip.
//
type Part struct {
	*PartSpec
	Conns map[string][]string
}

// Parts is a list of parts.
//
type Parts []Part
