package sweeper

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/deedlane/marketplace/internal/adapter"
	"github.com/deedlane/marketplace/internal/chain"
	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/logger"
	"github.com/deedlane/marketplace/internal/store"
	"github.com/deedlane/marketplace/internal/store/schema"
)

// OwnershipSweeper periodically reconciles cached token owner projections
// against the chain, stalest first. Transfers that happened outside the
// marketplace become visible the next time their token is swept.
type OwnershipSweeper struct {
	store    store.Store
	resolver chain.OwnerResolver
	clock    adapter.Clock

	interval  time.Duration
	batchSize int
	pool      pond.Pool

	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

func NewOwnershipSweeper(st store.Store, resolver chain.OwnerResolver, clock adapter.Clock, interval time.Duration, batchSize, concurrency int) *OwnershipSweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 200
	}
	if concurrency <= 0 {
		concurrency = 8
	}
	return &OwnershipSweeper{
		store:     st,
		resolver:  resolver,
		clock:     clock,
		interval:  interval,
		batchSize: batchSize,
		pool:      pond.NewPool(concurrency),
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (s *OwnershipSweeper) Name() string {
	return "ownership-sweeper"
}

func (s *OwnershipSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	defer close(s.stoppedCh)

	logger.InfoCtx(ctx, "starting sweeper",
		zap.String("name", s.Name()),
		zap.Duration("interval", s.interval))

	for {
		s.sweepRound(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopChan:
			return nil
		case <-time.After(s.interval):
		}
	}
}

func (s *OwnershipSweeper) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	close(s.stopChan)
	<-s.stoppedCh
	s.pool.StopAndWait()
}

func (s *OwnershipSweeper) sweepRound(ctx context.Context) {
	tokens, err := s.store.GetTokensForOwnerSync(ctx, s.batchSize)
	if err != nil {
		logger.ErrorCtx(ctx, "failed to load tokens for owner sync", zap.Error(err))
		return
	}
	if len(tokens) == 0 {
		return
	}

	group := s.pool.NewGroup()
	for _, token := range tokens {
		token := token
		group.Submit(func() {
			s.syncToken(ctx, token)
		})
	}
	group.Wait()
}

func (s *OwnershipSweeper) syncToken(ctx context.Context, token schema.Token) {
	if token.Listing == nil || token.Listing.ContractAddress == nil {
		return
	}
	contract := *token.Listing.ContractAddress

	var owner string
	operation := func() error {
		var err error
		owner, err = s.resolver.OwnerOf(ctx, contract, token.TokenNumber)
		return err
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		logger.WarnCtx(ctx, "owner sync failed",
			zap.Uint64("token_id", token.ID),
			zap.String("contract", contract),
			zap.Error(err))
		return
	}

	if token.OwnerAddress != nil && domain.SameAddress(*token.OwnerAddress, owner) {
		// still current, just refresh the sync timestamp
		if err := s.store.UpdateTokenOwner(ctx, token.ID, *token.OwnerAddress, s.clock.Now()); err != nil {
			logger.ErrorCtx(ctx, "failed to touch owner sync time",
				zap.Uint64("token_id", token.ID), zap.Error(err))
		}
		return
	}

	logger.InfoCtx(ctx, "token owner changed on chain",
		zap.Uint64("token_id", token.ID),
		zap.String("new_owner", owner))
	if err := s.store.UpdateTokenOwner(ctx, token.ID, owner, s.clock.Now()); err != nil {
		logger.ErrorCtx(ctx, "failed to update token owner",
			zap.Uint64("token_id", token.ID), zap.Error(err))
	}
}
