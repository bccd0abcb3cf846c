package keylock

import (
	"fmt"

	"github.com/valsim/keylock/logic"
	"github.com/valsim/keylock/parts"
)

const (
	keyBits  = 64
	laneBits = 8
	lanes    = keyBits / laneBits

	// steps per simulated clock cycle and cycles run per evaluation.
	// The longest combinational path is key bus -> lane XOR ->
	// comparator -> AND reduce (4 component layers), well within half a
	// cycle, and the lock latch captures on the second rising edge.
	stepsPerCycle = 16
	settleCycles  = 2
)

// Hardwired comparator constants. laneDiff[i] is the expected value of
// byte lane i XOR byte lane i+1; topLane is the expected value of the
// highest byte lane, which pins the difference chain so that exactly
// one key pattern asserts every comparator.
var laneDiff = [lanes - 1]uint64{0x20, 0x20, 0x50, 0x10, 0x30, 0xf0, 0xe0}

const topLane = 0x00

// lockChip is the blueprint of the lock netlist.
//
//	Inputs: key[64]
//	Outputs: lock
//
var lockChip = mustLockChip()

func mustLockChip() logic.NewPartFn {
	ps := make(logic.Parts, 0, 2*lanes+1)
	for i := 0; i < lanes-1; i++ {
		lo := i * laneBits
		hi := lo + laneBits
		ps = append(ps,
			parts.XorN(laneBits)(fmt.Sprintf(
				"a[0..%d]=key[%d..%d], b[0..%d]=key[%d..%d], out[0..%d]=d%d[0..%d]",
				laneBits-1, lo, hi-1, laneBits-1, hi, hi+laneBits-1, laneBits-1, i, laneBits-1)),
			parts.EqConstN(laneBits, laneDiff[i])(fmt.Sprintf(
				"in[0..%d]=d%d[0..%d], out=chk[%d]", laneBits-1, i, laneBits-1, i)),
		)
	}
	ps = append(ps,
		parts.EqConstN(laneBits, topLane)(fmt.Sprintf(
			"in[0..%d]=key[%d..%d], out=chk[%d]", laneBits-1, keyBits-laneBits, keyBits-1, lanes-1)),
		parts.AndNWay(lanes)(fmt.Sprintf("in[0..%d]=chk[0..%d], out=armed", lanes-1, lanes-1)),
		parts.DFF("in=armed, out=lock"),
	)

	chip, err := logic.Chip("KEYLOCK", fmt.Sprintf("key[%d]", keyBits), "lock", ps)
	if err != nil {
		panic(err)
	}
	return chip
}

// Evaluate reports whether key asserts the circuit's lock output. It is
// deterministic and side effect free: every call mounts a fresh circuit
// from the blueprint, so the lock latch and every wire start from the
// same reset state regardless of previous evaluations.
//
// The accepted key is 0x00e0102030604060.
//
func Evaluate(key uint64) bool {
	var lock bool
	c, err := logic.NewCircuit(stepsPerCycle, logic.Parts{
		parts.InputN(keyBits, func() uint64 { return key })(
			fmt.Sprintf("out[0..%d]=key[0..%d]", keyBits-1, keyBits-1)),
		lockChip(fmt.Sprintf("key[0..%d]=key[0..%d], lock=lock", keyBits-1, keyBits-1)),
		parts.Output(func(v bool) { lock = v })("in=lock"),
	})
	if err != nil {
		// the netlist is static, mounting it cannot fail
		panic(err)
	}
	for i := 0; i < settleCycles; i++ {
		c.TickTock()
	}
	return lock
}
