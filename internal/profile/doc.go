// Package profile maintains running per-author aggregates across everything
// a process has observed. The Profiler is the only stateful component of the
// analysis core: an append-only per-handle score history guarded by a lock,
// with every profile recomputed from the full history after each addition so
// the result never depends on update order.
package profile
