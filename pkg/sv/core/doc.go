// Package core contains pipeline plumbing: channel helpers, worker
// configuration via context, and the locomotive that drives stages over
// channels of sv.StatusValue.
package core
