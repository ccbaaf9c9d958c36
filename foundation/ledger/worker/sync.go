package worker

import (
	"context"
	"time"
)

// resolveTimeout bounds one full consensus pass across all peers.
const resolveTimeout = time.Minute

// resolveOperations runs consensus passes on the regular interval and on
// demand when a resolve is signaled.
func (w *Worker) resolveOperations() {
	w.evHandler("worker: resolveOperations: G started")
	defer w.evHandler("worker: resolveOperations: G completed")

	for {
		select {
		case <-w.ticker.C:
			if !w.isShutdown() {
				w.runResolveOperation()
			}
		case <-w.resolve:
			if !w.isShutdown() {
				w.runResolveOperation()
			}
		case <-w.shut:
			w.evHandler("worker: resolveOperations: received shut signal")
			return
		}
	}
}

// runResolveOperation performs one consensus pass against the known peers.
func (w *Worker) runResolveOperation() {
	w.evHandler("worker: runResolveOperation: started")
	defer w.evHandler("worker: runResolveOperation: completed")

	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	replaced, err := w.state.ResolveConflicts(ctx)
	if err != nil {
		w.evHandler("worker: runResolveOperation: ERROR: %s", err)
		return
	}

	if replaced {
		w.evHandler("worker: runResolveOperation: local chain replaced")
	}
}
