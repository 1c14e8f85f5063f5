// Package circuit provides the minimal circuit collaborator consumed by the
// instantiation core: an ordered list of gate placements over a fixed qudit
// register, with flat parameter slots, recursive unitary composition, a
// differentiability predicate, and deep copying.
//
// It also provides CircuitGate, the adapter that freezes an entire circuit
// into a single atomic constant gate: size, radixes, and unitary are computed
// eagerly at construction and never invalidated, because the wrapped circuit
// is never exposed for mutation afterwards. Two constructors make the
// ownership transfer explicit at the call site: NewFrozen deep-copies the
// input, FreezeOwned consumes it.
//
// A Circuit is mutable through Append and SetParams; everything an
// instantiation strategy touches (UnitaryAt, accessors) is read-only and safe
// to drive from many goroutines at once.
package circuit
