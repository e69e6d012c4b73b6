package db

import "context"

// StubTxManager runs the function without a real transaction. It backs tests
// and the in-memory repository, which has no transactional context.
type StubTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = (*StubTxManager)(nil)

func (tm *StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tm.RunInTxFunc != nil {
		return tm.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
