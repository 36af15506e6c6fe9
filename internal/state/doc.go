// Package state shares the note listing between the background refresher and
// the UI.
//
// The refresher (see package app) lists the note store on a timer, on change
// notifications from the store, and after every mutation the UI performs. It
// writes the result with Update; the UI reads it with Snapshot on each tick.
//
//	refresher:  store.List() → state.Update(notes, err)
//	UI tick:    state.Snapshot() → rebuild list when Version changed
//
// Update keeps the previous listing when a refresh fails and records the error
// and a consecutive failure count instead, so a flaky disk does not blank the
// screen. Snapshot returns copies; callers may modify what they receive.
package state
