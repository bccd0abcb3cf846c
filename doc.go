/*
Package keylock decides whether a 64-bit key unlocks the lock circuit.

The lock is a fixed netlist simulated with package logic: the key is
driven onto a 64-wire bus, adjacent byte lanes are XORed into lane
differences, each difference is compared against a hardwired constant,
and the comparator outputs are AND-reduced into a flip-flop that latches
the lock signal on the next clock edge. Evaluate mounts a fresh circuit,
runs it for a fixed number of clock cycles and reads the latch.

Evaluate is a total function over all 2^64 keys: a wrong key is a
negative result, never an error.
*/
package keylock
