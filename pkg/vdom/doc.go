// Package vdom provides the render node tree produced by view composition.
//
// A render tree is an in-memory intermediate representation of the UI. It is
// built once per composition run and then handed either to a host for a fresh
// mount or to the reconciler as one side of a diff.
//
// # Core Types
//
// Node is a closed variant with four kinds: element, text, raw text and
// comment. Elements carry an ordered attribute map, an ordered listener map
// and an ordered child sequence.
//
// # Accumulation
//
// Contributions to the same attribute key are concatenated, never
// overwritten, so independent modifiers compose:
//
//	n := Element("p")
//	n.Attrs.Merge("style", "color:red;")
//	n.Attrs.Merge("style", "margin:0;")
//	// style = "color:red;margin:0;"
//
// Handlers registered for the same event name accumulate in registration
// order and are all invoked on dispatch.
//
// # Building
//
// Builder is the transient accumulator used by the composition layer. It is
// owned by exactly one composition run, passed explicitly, and sealed when the
// node sequence is handed off with Nodes.
package vdom
