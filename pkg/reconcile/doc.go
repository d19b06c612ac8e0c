// Package reconcile mounts render trees onto a host and patches a live host
// tree from one render tree to the next.
//
// The host is reached only through the Host interface, so any retained tree
// (a browser-like DOM mirror, a terminal widget tree, a test double) can be
// driven by the same algorithm.
//
// # Algorithm
//
// Reconcile walks old and new trees in lockstep:
//
//   - Different kind, or elements with different tags: the new node is
//     mounted fresh and replaces the live node.
//   - Elements with the same tag: attributes and listeners whose key is new
//     are added; children are matched by position, reconciled pairwise, and
//     extra new children are mounted and appended.
//   - Text, raw text and comments with equal content: no mutation.
//   - Text-like nodes with different content: mounted fresh and replaced.
//
// # Known Limitations
//
// Patching is additive. Attributes and listeners present in the old tree are
// never changed or removed, even when their value differs or they are absent
// from the new tree. Live children beyond the length of the new child list
// are left in place. Children are matched by position only; a reorder is seen
// as independent content changes. These are deliberate and asserted by the
// tests, so a divergence between live tree and render tree can accumulate.
//
// # Concurrency
//
// A reconcile call runs to completion on the calling goroutine and mutates
// the live tree in place. Callers must serialize calls that touch the same
// host tree.
package reconcile
