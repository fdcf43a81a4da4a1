// Package app provides the orchestration layer for splash.
//
// # Overview
//
// This package wires together configuration, the plugin registry, tailing,
// and rendering. It serves as the composition root where dependencies are
// initialized and connected; the domain logic lives in the tail, format, and
// plugin packages.
//
// # Data Flow
//
//	Run()
//	  ├─> config.Load()        read ~/.config/splash/config.toml
//	  ├─> newRegistry()        register built-in formats (clf, adhoc)
//	  ├─> activePlugin()       resolve the mode selector, once per run
//	  └─> tail loop or stdin loop
//	        └─> batch → lines → ParseLine → stdout
//
// The tail loop is single-threaded and blocking: it polls, processes one
// change fully, then waits again. Standard input is likewise a sequential
// line read with no offset tracking.
//
// # Error Handling
//
// Fatal errors (returned from Run): config parse failures, inability to open
// the tailed file, and any read failure during the watch loop. Per-line
// conditions never abort the run: non-matching lines are dropped silently
// and plugin parse errors are logged to stderr.
//
// The subcommand entry points (ListPlugins, Discover, Find, Detect) are
// one-shot operations writing human-readable output to the given writer.
package app
