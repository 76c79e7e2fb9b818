// Package stream provides small reactive building blocks over channels.
package stream

import "context"

// CombineLatest emits fn(a, b) with the most recent value of each input every
// time either input produces a value, once both have produced at least once.
// The output closes when both inputs have closed or ctx is cancelled.
func CombineLatest[A, B, R any](ctx context.Context, as <-chan A, bs <-chan B, fn func(A, B) R) <-chan R {
	out := make(chan R)

	go func() {
		defer close(out)

		var (
			a     A
			b     B
			haveA bool
			haveB bool
		)
		aIn, bIn := as, bs

		for aIn != nil || bIn != nil {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-aIn:
				if !ok {
					aIn = nil
					continue
				}
				a, haveA = v, true
			case v, ok := <-bIn:
				if !ok {
					bIn = nil
					continue
				}
				b, haveB = v, true
			}

			if !haveA || !haveB {
				continue
			}
			select {
			case out <- fn(a, b):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// FilterWith combines a stream of lists with a stream of filters and emits
// the elements of the latest list accepted by the latest filter, in order.
func FilterWith[T, F any](ctx context.Context, lists <-chan []T, filters <-chan F, keep func(T, F) bool) <-chan []T {
	return CombineLatest(ctx, lists, filters, func(list []T, filter F) []T {
		out := make([]T, 0, len(list))
		for _, item := range list {
			if keep(item, filter) {
				out = append(out, item)
			}
		}
		return out
	})
}

// Map applies fn to every value of in
func Map[T, R any](ctx context.Context, in <-chan T, fn func(T) R) <-chan R {
	out := make(chan R)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- fn(v):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Of returns a closed channel that yields values in order
func Of[T any](values ...T) <-chan T {
	out := make(chan T, len(values))
	for _, v := range values {
		out <- v
	}
	close(out)
	return out
}
