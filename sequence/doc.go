// Package sequence provides infinite, lazily computed number sequences.
//
// Each generator owns its own cursor and is not restartable; create a new generator to start over.
// Consumers decide when to stop pulling, for example using gostreams.CollectFirst or gostreams.Limit.
package sequence
