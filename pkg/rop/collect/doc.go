// Package collect aggregates sequences of rop.Result values.
//
// All and Sequence are all-or-nothing: they yield every success in input
// order or the first failure, and All never evaluates inputs past that
// failure. Each keeps one result per input. Partition and Errors report on
// the per-element form.
package collect
