// Package collection provides an ordered, unique-keyed collection of
// identified values.
//
// # Overview
//
// GraphML documents list nodes and edges as ordered sequences, while
// consumers want constant-time lookup by id. [Ordered] is the adapter
// between the two views: it is built from a sequence with [FromSlice],
// answers [Ordered.Get] in O(1), and unfolds back into the original order
// with [Ordered.Slice]. Only one table is stored; the sequence view is
// always derived from it, so the two can never diverge.
//
// # Duplicate Ids
//
// When a sequence repeats an id, the collection keeps one entry at the
// position where the id was first seen. Which value survives is a named
// [Policy]: [LastWriteWins] (the default used by [FromSlice]) or
// [FirstWriteWins]. Every id that was collapsed is reported by
// [Ordered.Collapsed], so callers that must reject duplicates can do so
// after folding.
//
// # Concurrency
//
// An Ordered is not safe for concurrent mutation. Once built, concurrent
// reads are safe.
package collection
