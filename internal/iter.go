// Package internal holds iterator helpers shared by the define tables.
package internal

import (
	"cmp"
	"iter"
	"slices"
)

// Concat2 chains key/value sequences, yielding each one in turn.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// SortedByKey collects a sequence and yields it again ordered by key.
// Later duplicates replace earlier ones.
func SortedByKey[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		values := map[K]V{}
		for key, val := range seq {
			values[key] = val
		}

		keys := make([]K, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			if !yield(key, values[key]) {
				return
			}
		}
	}
}
