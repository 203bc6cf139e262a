// Package simon implements the NSA SIMON lightweight block-cipher family as
// a step-wise engine: one logical hardware-style step per call, with an
// explicit control state machine, a reconfigurable LFSR round-constant
// generator, and a two-phase decryption pipeline that first runs the key
// schedule forward to recover the final-round key window.
//
// The package is deliberately single-threaded. An Engine owns all of its
// state; at most one operation is in flight at a time, and callers drive it
// with Submit/Step/Response/Accept (or through Front, which adds the
// ready/valid ticket contract on top).
package simon
