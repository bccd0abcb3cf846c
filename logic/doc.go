/*
Package logic provides a small netlist simulator used to model the
key-validation circuit as actual hardware: parts are mounted into
sockets, pins are wired together by name, and the resulting circuit is
settled by stepping wire states until the outputs stabilize.

Parts are described by a PartSpec and instantiated with a connection
description string:

	xor, err := logic.Chip("XOR", "a, b", "out", logic.Parts{
		nand("a=a, b=b, out=nandAB"),
		nand("a=a, b=nandAB, out=w0"),
		nand("a=b, b=nandAB, out=w1"),
		nand("a=w0, b=w1, out=out"),
	})

The simulator keeps two wire-state frames: during a step every component
reads the previous frame and writes the next one, so signals propagate
one component layer per step and the result of a step does not depend on
component ordering.
*/
package logic
