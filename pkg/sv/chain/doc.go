// Package chain provides a fluent wrapper around sv.StatusValue for building
// synchronous chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a StatusValue or a status and value
// - Validate: reject the value with a failure status
// - Then: switch to a new StatusValue[S, U] via a function
// - ThenTry: call a function (U, error) and map the error to a status
// - Map: transform the present value (V -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
