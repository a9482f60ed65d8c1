// Package gostreams provides a set of operations on lazy, pull-based streams of elements.
// Streams form a pipeline of operations that elements are being passed through.
//
// The unit of production is a Generator: an object owning a private cursor that returns
// the next element each time Next is called, and reports exhaustion once it has nothing
// more to produce. Generators may be finite or infinite, and are never restarted implicitly.
//
// Streams are constructed by creating an initial ProducerFunc, which opens a Generator inside
// a stream's context. Producers can be created from slices (Produce), or from any existing
// Generator (From).
//
// Elements may then be operated upon using mapping, filtering, limiting, and sorting operations
// (which are intermediate ProducerFuncs).
//
// Finally, the elements are consumed by ConsumerFuncs and AccumulatorFuncs, such as collecting
// them into slices or maps, counting them per key, or simply iterating over them.
// Into lets several accumulators share one pass over a stream.
// CollectFirst materializes a fixed-size prefix of any Generator.
//
// Stream operations will receive a context.CancelCauseFunc. Calling the cancel function will
// cancel the entire stream, thus short-circuiting processing elements. Depending on the intermediate
// operations and the final consumer, the result of the consumer may be undefined.
//
// Streams are always lazy and single-threaded: nothing is produced until a consumer pulls,
// and each intermediate pulls from its upstream at most once per element it produces.
// A stream never pulls from its generator after its context is done.
package gostreams
