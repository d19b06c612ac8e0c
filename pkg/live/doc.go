// Package live serves a view as a live document.
//
// Each WebSocket connection gets a Session. The session keeps an in-memory
// mirror of the client's tree (memhost), re-runs the render function when
// invalidated, reconciles the result against the previous render and
// streams the recorded host mutations to the client as FramePatches
// frames. Client events arrive as FrameEvent frames addressed by host node
// ID and run the mirror node's listeners.
//
// # Session Loop
//
// All renders, event dispatches and Do callbacks run on one goroutine, the
// one calling Session.Run. Invalidate and Dispatch are safe from any
// goroutine; they only enqueue work. Invalidations coalesce: any number
// of calls before the loop wakes cause one render.
//
// # Known Limitations
//
// Reconciliation is additive for listeners: once a node has a handler for
// an event name, re-renders do not replace it. Handlers should reach state
// through pointers rather than capture per-render values.
//
// # Routes
//
//	GET /         HTML snapshot of a fresh render
//	GET /live     WebSocket endpoint
//	GET /healthz  liveness probe
//	GET /metrics  Prometheus metrics (path configurable)
package live
