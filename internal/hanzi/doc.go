// Package hanzi picks random Chinese characters from a reference dataset.
//
// The dataset is two tables keyed by small integers: a level table (tier of
// difficulty or frequency) and a stroke-count table. A call narrows the
// level table to a candidate pool, keeps the pool entries whose character
// appears in a matching stroke-count entry, then samples from the pool.
//
// Two policies are intentional and covered by tests:
//
//   - A malformed range string is treated as no filter. ParseRange returns
//     nil instead of an error.
//   - Without duplicates, a count larger than the pool is silently capped.
//
// The embedded dataset is decoded once per process and never mutated, so a
// Dataset can be shared between goroutines.
package hanzi
