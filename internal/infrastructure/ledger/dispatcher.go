package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/luci/internal/infrastructure/config"
	"github.com/eslsoft/luci/pkg/reference"
)

// Submitter is the ledger write path used by the dispatcher.
type Submitter interface {
	Submit(ctx context.Context, memberID int64) (common.Hash, error)
	WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, int, error)
}

// Service accepts message notifications and processes them in Run.
type Service interface {
	NotifyMessage(ctx context.Context, reference string)
	Run(ctx context.Context) error
}

type job struct {
	id        string
	reference string
	queuedAt  time.Time
}

// Dispatcher is an in-process outbox: notifications are queued without
// blocking and a single worker submits them in order.
type Dispatcher struct {
	ledger       Submitter
	queue        chan job
	drainTimeout time.Duration
	logger       *logrus.Logger
}

func NewDispatcher(ledger Submitter, queueSize int, drainTimeout time.Duration, logger *logrus.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Dispatcher{
		ledger:       ledger,
		queue:        make(chan job, queueSize),
		drainTimeout: drainTimeout,
		logger:       logger,
	}
}

// NotifyMessage enqueues a ledger update for reference. A full queue drops
// the notification.
func (d *Dispatcher) NotifyMessage(ctx context.Context, ref string) {
	j := job{id: uuid.NewString(), reference: ref, queuedAt: time.Now()}
	select {
	case d.queue <- j:
	default:
		d.logger.WithContext(ctx).WithFields(logrus.Fields{
			"job_id":    j.id,
			"reference": ref,
			"capacity":  cap(d.queue),
		}).Warn("ledger queue full, notification dropped")
	}
}

// Run processes queued notifications until ctx is done, then drains what is
// left for at most the drain timeout.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.drain(context.WithoutCancel(ctx))
			return nil
		case j := <-d.queue:
			d.process(ctx, j)
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	if d.drainTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.drainTimeout)
		defer cancel()
	}
	for {
		select {
		case <-ctx.Done():
			if n := len(d.queue); n > 0 {
				d.logger.WithField("pending", n).Warn("ledger drain deadline reached")
			}
			return
		case j := <-d.queue:
			d.process(ctx, j)
		default:
			return
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, j job) {
	log := d.logger.WithContext(ctx).WithFields(logrus.Fields{
		"job_id":    j.id,
		"reference": j.reference,
	})
	memberID, err := reference.ParseUserID(j.reference)
	if err != nil {
		log.WithError(err).Warn("ledger notification skipped")
		return
	}
	log = log.WithField("user_id", memberID)

	hash, err := d.ledger.Submit(ctx, memberID)
	if err != nil {
		log.WithError(err).Error("ledger submit failed")
		return
	}
	log = log.WithField("tx_hash", hash.Hex())

	receipt, attempts, err := d.ledger.WaitReceipt(ctx, hash)
	if err != nil {
		log.WithError(err).WithField("attempts", attempts).Error("ledger receipt not available")
		return
	}
	log = log.WithFields(logrus.Fields{
		"attempts": attempts,
		"gas_used": receipt.GasUsed,
		"status":   receipt.Status,
		"block":    receipt.BlockNumber,
		"latency":  time.Since(j.queuedAt).String(),
	})
	if receipt.Status != types.ReceiptStatusSuccessful {
		log.WithError(fmt.Errorf("%w: %s", ErrReverted, hash.Hex())).Error("ledger transaction reverted")
		return
	}
	log.Info("ledger updated")
}

// Disabled is used when no ledger endpoint is configured.
type Disabled struct{}

func (Disabled) NotifyMessage(context.Context, string) {}

func (Disabled) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// New builds the ledger service for cfg. Without an endpoint it returns
// Disabled.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Service, func(), error) {
	if !cfg.Ledger.Enabled() {
		logger.Info("ledger disabled: no endpoint configured")
		return Disabled{}, func() {}, nil
	}
	client, closeFn, err := Dial(ctx, cfg.Ledger)
	if err != nil {
		return nil, nil, err
	}
	logger.WithFields(logrus.Fields{
		"contract": cfg.Ledger.ContractAddress,
		"sender":   client.From().Hex(),
	}).Info("ledger enabled")
	return NewDispatcher(client, cfg.Ledger.QueueSize, cfg.Server.ShutdownTimeout, logger), closeFn, nil
}
