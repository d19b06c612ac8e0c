// Package memhost is an in-memory live node tree that implements the
// reconcile host interface.
//
// It plays the role of a browser DOM on the server side: the live session
// keeps one Host per client as a mirror of the client's tree, and tests use
// it to observe exactly which mutations a reconcile call performed.
//
// Every node gets a numeric ID on creation. Every mutating call is appended
// to the host's mutation log and passed to the optional recorder, which is
// how the live session turns host calls into wire patches.
//
// A Host is not safe for concurrent use.
package memhost
