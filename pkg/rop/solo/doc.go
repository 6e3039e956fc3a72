// Package solo contains single-value, synchronous railway primitives over
// rop.Result. A failed or cancelled input passes through every step
// untouched; only successes reach the supplied functions.
//
// Highlights:
// - Validate/AndValidate/FailOnError: turn a success into a failure
// - Switch: move from Result[In] to Result[Out] with a fallible step
// - Map/Try: transform a success with a pure or (Out, error) function
// - Tee/DoubleTee: side effects without changing the result
// - Join/ValidateAll: run several steps over one input, optionally stopping early
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
