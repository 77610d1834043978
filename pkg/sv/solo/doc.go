// Package solo contains single-value, synchronous primitives that operate
// on sv.StatusValue. Instances without a value pass through untouched with
// their status preserved.
//
// Highlights:
// - Succeed/Fail: construct StatusValue
// - Validate/AndValidate/ValidateAll: reject a value with a failure status
// - Switch: move from StatusValue[S, In] to StatusValue[S, Out]
// - Map/DoubleMap: transform present values
// - Try/TryCode: call a function (Out, error) and map the error to a status
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Recover: turn a value-access panic back into a failure
package solo
