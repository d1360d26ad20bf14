// Package async provides a minimal generic Future for running a computation in
// the background and collecting its result later.
//
//	f := async.Go(ctx, func(ctx context.Context) (string, error) {
//	    return fetch(ctx)
//	})
//
//	// do other work …
//	res, err := f.Await()
//
// A Future can be awaited any number of times, with a context (AwaitContext)
// or a timeout (AwaitWithTimeout), polled with IsComplete or selected on through
// Done. Giving up on a wait never stops the computation; cancel its context for
// that.
package async
