package operation

import (
	"context"
	"sync"
)

// SingleOperationManager ensures only 1 operation is happening a time.
// Starting an operation cancels the running one and waits for it to finish.
type SingleOperationManager struct {
	mu        sync.Mutex
	currentOp *anOp
}

// CancelRunning cancels the current operation, if any. The operation stays current
// until its done function is called.
func (sm *SingleOperationManager) CancelRunning() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.currentOp != nil {
		sm.currentOp.cancelFunc()
	}
}

// OpRunning returns if there is a current operation.
func (sm *SingleOperationManager) OpRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.currentOp != nil
}

// Superseded returns true when a newer operation has replaced the one running in ctx.
func (sm *SingleOperationManager) Superseded(ctx context.Context) bool {
	myOp, ok := ctx.Value(somCtxKeySingleOp).(*anOp)
	if !ok {
		return false
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.currentOp != myOp
}

type somCtxKey byte

const somCtxKeySingleOp = somCtxKey(iota)

// New creates a new operation, cancels previous, returns a new context and function to call when done.
// It does not return until the previous operation has called its done function.
func (sm *SingleOperationManager) New(ctx context.Context) (context.Context, func()) {
	sm.mu.Lock()
	prev := sm.currentOp
	if prev != nil {
		prev.cancelFunc()
	}
	theOp := &anOp{done: make(chan struct{})}
	ctx = context.WithValue(ctx, somCtxKeySingleOp, theOp)
	ctx, theOp.cancelFunc = context.WithCancel(ctx)
	sm.currentOp = theOp
	sm.mu.Unlock()

	if prev != nil {
		<-prev.done
	}

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			theOp.cancelFunc()
			sm.mu.Lock()
			if theOp == sm.currentOp {
				sm.currentOp = nil
			}
			sm.mu.Unlock()
			close(theOp.done)
		})
	}
}

type anOp struct {
	cancelFunc context.CancelFunc
	done       chan struct{}
}
