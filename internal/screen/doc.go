// Package screen contains the state holders behind the note screens.
//
// Each holder is a value updated by pure methods that return the next value
// together with an Effect describing the work the caller must perform (fetch,
// save, delete, share, navigate back). The Bubble Tea layer turns effects into
// commands and feeds their results back through the matching method
// (Loaded, Saved, Deleted). Nothing here touches the store or the terminal,
// so every transition is testable without either.
package screen
