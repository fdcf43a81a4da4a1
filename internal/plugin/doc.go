// Package plugin defines the format-plugin contract and the infrastructure
// around it: a concurrency-safe registry of named, versioned parser instances
// and a filesystem discovery mechanism for candidate plugin modules.
//
// # Contract
//
// A Plugin exposes its Metadata and a single ParseLine operation returning a
// three-way Result: Parsed with rendered text, NoMatch, or ParseError with a
// message. CanParse and DetectFormat are derived for every implementation:
// CanParse tries a parse, and DetectFormat scores a sample set as the
// fraction of lines that parse.
//
// # Registry
//
// The Registry maps names to shared plugin instances and tracks a disabled
// set. Reads (Get, List, Contains, Count) run concurrently; writes
// (Register, Unregister, Disable, Enable) are exclusive. Version checks use
// the compatibility rule on Version: equal major, and minor/patch at least
// the required values.
//
// # Discovery
//
// Discovery scans an ordered list of directories for regular files with a
// native-module extension (.so, .dylib, .dll). It locates candidates only;
// loading and linking discovered modules is out of scope. Default search
// paths cover a user plugins directory (~/.splash/plugins) and the
// platform's conventional system-wide locations.
package plugin
