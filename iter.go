package pprint

import (
	"iter"
)

// SeqOf converts each item with [Of].
func SeqOf[T any](items ...T) Seq {
	out := make(Seq, len(items))
	for i, item := range items {
		out[i] = Of(item)
	}
	return out
}

// SetOf converts each item with [Of], keeping the given order.
func SetOf[T any](items ...T) Set {
	return Set(SeqOf(items...))
}

// Collect drains seq into a Seq, converting each item with [Of].
func Collect[T any](seq iter.Seq[T]) Seq {
	var out Seq
	for item := range seq {
		out = append(out, Of(item))
	}
	return out
}

// CollectSet drains seq into a Set in iteration order.
func CollectSet[T any](seq iter.Seq[T]) Set {
	return Set(Collect(seq))
}

// CollectMap drains seq into a Map in iteration order.
func CollectMap[K, V any](seq iter.Seq2[K, V]) Map {
	var out Map
	for k, v := range seq {
		out = append(out, Entry{Key: Of(k), Value: Of(v)})
	}
	return out
}

// CollectChan drains ch into a Seq. It returns once ch is closed.
func CollectChan[T any](ch <-chan T) Seq {
	return Collect(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
