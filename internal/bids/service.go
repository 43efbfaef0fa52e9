package bids

import (
	"github.com/alitto/pond/v2"

	"github.com/deedlane/marketplace/internal/adapter"
	"github.com/deedlane/marketplace/internal/chain"
	"github.com/deedlane/marketplace/internal/messaging"
	"github.com/deedlane/marketplace/internal/store"
)

// Service implements bid aggregation and the bid lifecycle
type Service struct {
	store     store.Store
	resolver  chain.OwnerResolver
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.Pool
}

// NewService builds the bid service. concurrency bounds parallel on-chain
// owner lookups during aggregation.
func NewService(st store.Store, resolver chain.OwnerResolver, publisher messaging.Publisher, clock adapter.Clock, concurrency int) *Service {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Service{
		store:     st,
		resolver:  resolver,
		publisher: publisher,
		clock:     clock,
		pool:      pond.NewPool(concurrency),
	}
}

// Stop releases the owner-lookup worker pool
func (s *Service) Stop() {
	s.pool.StopAndWait()
}
