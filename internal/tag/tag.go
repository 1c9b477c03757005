// Package tag carries compile-time build tags shared across pool, tree and
// set. It exists so debug-only bookkeeping (nilling stale free-list
// pointers, zeroing released values) is a single flag flip, rather than
// scattered build constraints.
package tag

// Debug is true when the module is built with the "rtsetdebug" build tag.
// Code gated on Debug trades steady-state cost for being able to catch a
// dangling link or a double-free closer to its origin.
var Debug = debug
