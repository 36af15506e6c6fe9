// Package app provides the orchestration layer for quill.
//
// # Overview
//
// This package wires together configuration, logging, the note store, the
// background poller and the UI. It is the composition root where every
// dependency is built and handed to the components that use it.
//
// # Architecture
//
//  1. Load config.toml and prefs.toml (missing files give defaults)
//  2. Open the rotating log file
//  3. Open the configured store backend under the data directory
//  4. Subscribe to store change notifications when the backend offers them
//  5. Run the poller and the TUI in one errgroup; quitting the TUI cancels
//     the poller
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()   Read config.toml
//	       ├─────> logging.New()   Rotating log file
//	       ├─────> OpenStore()     sqlite or markdown backend
//	       ├─────> Poller.Run()    Keep state.Store current
//	       └─────> ui.Run()        Start TUI (blocks)
//
//	Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ Poller.Run() goroutine                  │
//	│  ├─> store.List()                       │
//	│  └─> state.Store.Update()  (atomic)     │
//	│      └─> UI reads Snapshot() each tick  │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller lists notes on start, then every PollSeconds and whenever the
// store reports a change. Consecutive failures back off exponentially up to
// 30 seconds; the UI marks the listing as degraded after two. Errors are
// logged and never stop the loop.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration
//   - Log file or store that cannot be opened
//
// Everything after startup is recoverable and reported in the UI.
package app
