package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/pkg/reference"
)

type fakeSubmitter struct {
	mu        sync.Mutex
	submitted []int64
	submitErr error
	receipt   *types.Receipt
}

func (f *fakeSubmitter) Submit(_ context.Context, memberID int64) (common.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return common.Hash{}, f.submitErr
	}
	f.submitted = append(f.submitted, memberID)
	return common.BigToHash(common.Big1), nil
}

func (f *fakeSubmitter) WaitReceipt(context.Context, common.Hash) (*types.Receipt, int, error) {
	if f.receipt != nil {
		return f.receipt, 1, nil
	}
	return &types.Receipt{GasUsed: 30000, Status: types.ReceiptStatusSuccessful}, 1, nil
}

func (f *fakeSubmitter) ids() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.submitted...)
}

func runDispatcher(t *testing.T, d *Dispatcher) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	return func() {
		stop()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("dispatcher did not stop")
		}
	}
}

func TestDispatcherSubmitsInOrder(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sub := &fakeSubmitter{}
	d := NewDispatcher(sub, 8, time.Second, logger)

	stop := runDispatcher(t, d)
	d.NotifyMessage(context.Background(), reference.Encode("s", "1"))
	d.NotifyMessage(context.Background(), reference.Encode("s", "2"))
	d.NotifyMessage(context.Background(), reference.Encode("s", "3"))
	stop()

	assert.Equal(t, []int64{1, 2, 3}, sub.ids())
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	logger, hook := test.NewNullLogger()
	d := NewDispatcher(&fakeSubmitter{}, 1, time.Second, logger)

	d.NotifyMessage(context.Background(), reference.Encode("s", "1"))
	d.NotifyMessage(context.Background(), reference.Encode("s", "2"))

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, reference.Encode("s", "2"), entry.Data["reference"])
	assert.Len(t, d.queue, 1)
}

func TestDispatcherLogsFailuresAndContinues(t *testing.T) {
	logger, hook := test.NewNullLogger()
	sub := &fakeSubmitter{submitErr: errors.Join(ErrSubmit, errors.New("insufficient funds"))}
	d := NewDispatcher(sub, 4, time.Second, logger)

	stop := runDispatcher(t, d)
	d.NotifyMessage(context.Background(), "not-base64!")
	d.NotifyMessage(context.Background(), reference.Encode("s", "abc"))
	d.NotifyMessage(context.Background(), reference.Encode("s", "9"))
	stop()

	var warns, errs int
	for _, e := range hook.AllEntries() {
		switch e.Level {
		case logrus.WarnLevel:
			warns++
		case logrus.ErrorLevel:
			errs++
			assert.Equal(t, int64(9), e.Data["user_id"])
		}
	}
	assert.Equal(t, 2, warns)
	assert.Equal(t, 1, errs)
}

func TestDispatcherReportsRevertedTransaction(t *testing.T) {
	logger, hook := test.NewNullLogger()
	sub := &fakeSubmitter{receipt: &types.Receipt{GasUsed: 50000, Status: types.ReceiptStatusFailed}}
	d := NewDispatcher(sub, 1, time.Second, logger)

	d.process(context.Background(), job{id: "j1", reference: reference.Encode("s", "5"), queuedAt: time.Now()})

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "ledger transaction reverted", entry.Message)
	assert.Equal(t, int64(5), entry.Data["user_id"])
	assert.Equal(t, uint64(50000), entry.Data["gas_used"])
	err, ok := entry.Data[logrus.ErrorKey].(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, ErrReverted)
	assert.ErrorIs(t, err, entity.ErrExternalService)
}

func TestDisabledRunStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Disabled{}.Run(ctx) }()
	Disabled{}.NotifyMessage(ctx, "x")
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("disabled ledger did not stop")
	}
}
