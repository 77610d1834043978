// Package sv provides StatusValue, a return type that always carries a
// status and carries a value only when the operation produced one.
//
// Two construction styles are supported:
// - Failure/Success: the caller decides whether a value is present
// - Sentinel: one reserved status means success; a value is present iff the
//   status equals it
//
// Value panics with *AccessError on an instance without a value; use Get,
// ValueOr or ValueErr to avoid the panic. Equal always compares statuses and
// compares values only when both sides hold one.
package sv
