// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels. It helps ensure that operations respect
// cancellation and deadlines via context.Context.
package chflow

import "context"

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
// The boolean is also false when ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false
	case data, ok := <-ch:
		return data, ok
	}
}

// SendLatest delivers data to the buffered channel ch without blocking. When
// the buffer is full the oldest pending value is discarded to make room, so a
// slow receiver always finds the most recent value. ch must have a single
// sender.
func SendLatest[T any](ch chan T, data T) {
	for {
		select {
		case ch <- data:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
