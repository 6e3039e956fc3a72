// Package chain provides a fluent wrapper around rop.Result for building
// synchronous railway chains on top of solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a value
// - Then: switch to a new Result[U] via a fallible function
// - ThenTry: call a function returning (U, error)
// - Map: transform the successful value (T -> U)
// - Check: fail the chain when a check returns an error
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Then, ThenTry, Map and Finally are functions rather than methods because
// Go methods cannot introduce new type parameters.
package chain
