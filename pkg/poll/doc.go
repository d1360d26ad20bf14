// Package poll waits for a condition to become true before carrying on.
//
// Wait blocks the caller; Delay polls in the background and invokes a callback
// once the condition holds:
//
//	f := poll.Delay(ctx, render, func() bool { return ready.Load() },
//	    poll.WithInterval(50*time.Millisecond),
//	    poll.WithTimeout(5*time.Second),
//	)
//	if _, err := f.Await(); errors.Is(err, poll.ErrTimeout) {
//	    // render was never called; the failure has been logged
//	}
//
// The condition is checked once right away and then once per interval
// (default 100ms). Polling stops after the timeout (default 100s) measured from
// the first check, or when the context is done. Intervals are driven by a
// constant backoff from github.com/sethvargo/go-retry.
package poll
