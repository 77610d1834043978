// Package lite lifts solo primitives over channels of sv.Maybe for simple
// fan-out/fan-in pipelines.
//
// Common usage:
// - Run/Turnout: execute an engine over an input channel with a fixed number of lines
// - Validate/Try/Switch/Map/Tee: build engines from solo operations
// - Finally: reduce each StatusValue to a plain value
//
// On cancellation queued inputs are dropped, unless core.WithProcessOptions
// enables processing the remainder, in which case each is emitted as a
// failure with sv.Canceled (or its own status when it already failed).
// Every input then yields exactly one output, and consumers must read until
// the output is closed.
package lite
