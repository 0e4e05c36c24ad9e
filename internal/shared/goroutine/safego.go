// Package goroutine starts background goroutines that log panics instead of crashing.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"noticeboard/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic in fn is logged with its stack
// and reported through the returned channel, which is closed once fn returns.
func SafeGo(log logger.Interface, name string, fn func()) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				done <- fmt.Errorf("goroutine %s panicked: %v", name, r)
			}
		}()
		fn()
	}()
	return done
}
