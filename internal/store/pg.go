package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"

	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore opens a PostgreSQL-backed Store and migrates the schema
func NewPGStore(dsn string, debug bool) (Store, error) {
	logLevel := gormLogger.Warn
	if debug {
		logLevel = gormLogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&schema.User{},
		&schema.Listing{},
		&schema.Token{},
		&schema.Bid{},
		&schema.PriceHistoryEntry{},
		&schema.Transaction{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &pgStore{db: db}, nil
}

// ConfigureConnectionPool applies pool limits to the underlying sql.DB
func ConfigureConnectionPool(s Store, maxOpen, maxIdle int, maxLifetime time.Duration) error {
	pg, ok := s.(*pgStore)
	if !ok {
		return nil
	}
	sqlDB, err := pg.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)
	return nil
}

func (s *pgStore) GetUserByID(ctx context.Context, id uint64) (*schema.User, error) {
	var user schema.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *pgStore) GetUserByWallet(ctx context.Context, wallet string) (*schema.User, error) {
	var user schema.User
	if err := s.db.WithContext(ctx).First(&user, "wallet_address = ?", wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return &user, nil
}

func (s *pgStore) GetListingByID(ctx context.Context, id uint64) (*schema.Listing, error) {
	var listing schema.Listing
	if err := s.db.WithContext(ctx).
		Preload("Tokens").
		First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

func (s *pgStore) ListListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, error) {
	query := s.db.WithContext(ctx).Model(&schema.Listing{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var listings []schema.Listing
	if err := query.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

func (s *pgStore) GetPriceHistory(ctx context.Context, listingID uint64) ([]schema.PriceHistoryEntry, error) {
	var entries []schema.PriceHistoryEntry
	if err := s.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get price history: %w", err)
	}
	return entries, nil
}

func (s *pgStore) AppendPriceHistory(ctx context.Context, entry *schema.PriceHistoryEntry) error {
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append price history: %w", err)
	}
	return nil
}

func (s *pgStore) GetTokenByID(ctx context.Context, id uint64) (*schema.Token, error) {
	var token schema.Token
	if err := s.db.WithContext(ctx).First(&token, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

func (s *pgStore) GetTokensByOwnerAddress(ctx context.Context, owner string) ([]schema.Token, error) {
	var tokens []schema.Token
	if err := s.db.WithContext(ctx).
		Where("owner_address = ?", owner).
		Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to get tokens by owner: %w", err)
	}
	return tokens, nil
}

// GetTokensForOwnerSync returns minted tokens ordered by how stale their
// owner projection is, never-synced first
func (s *pgStore) GetTokensForOwnerSync(ctx context.Context, limit int) ([]schema.Token, error) {
	var tokens []schema.Token
	if err := s.db.WithContext(ctx).
		Preload("Listing").
		Where("mint_status IN ?", []domain.MintStatus{
			domain.MintStatusCompletedToken,
			domain.MintStatusCompletedCollection,
		}).
		Order("owner_synced_at ASC NULLS FIRST").
		Limit(limit).
		Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to get tokens for owner sync: %w", err)
	}
	return tokens, nil
}

func (s *pgStore) UpdateTokenOwner(ctx context.Context, tokenID uint64, owner string, syncedAt time.Time) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("id = ?", tokenID).
		Updates(map[string]interface{}{
			"owner_address":   owner,
			"owner_synced_at": syncedAt,
		}).Error; err != nil {
		return fmt.Errorf("failed to update token owner: %w", err)
	}
	return nil
}

func (s *pgStore) CreateBid(ctx context.Context, bid *schema.Bid) error {
	if err := s.db.WithContext(ctx).Create(bid).Error; err != nil {
		return fmt.Errorf("failed to create bid: %w", err)
	}
	return nil
}

func (s *pgStore) GetBidByID(ctx context.Context, id uint64) (*schema.Bid, error) {
	var bid schema.Bid
	if err := s.db.WithContext(ctx).
		Preload("Token").
		Preload("Listing").
		First(&bid, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}
	return &bid, nil
}

func (s *pgStore) GetBidsByBidderWallet(ctx context.Context, wallet string) ([]schema.Bid, error) {
	var bids []schema.Bid
	if err := s.db.WithContext(ctx).
		Preload("Token").
		Preload("Listing").
		Where("bidder_wallet = ?", wallet).
		Order("created_at DESC").
		Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("failed to get bids by bidder: %w", err)
	}
	return bids, nil
}

func (s *pgStore) GetBidsForTokens(ctx context.Context, tokenIDs []uint64, statuses []domain.BidStatus) ([]schema.Bid, error) {
	if len(tokenIDs) == 0 {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Preload("Token").
		Preload("Listing").
		Where("token_id IN ?", tokenIDs)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var bids []schema.Bid
	if err := query.Order("created_at DESC").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("failed to get bids for tokens: %w", err)
	}
	return bids, nil
}

func (s *pgStore) AcceptBid(ctx context.Context, params AcceptBidParams) (*schema.Bid, error) {
	var accepted schema.Bid

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bid schema.Bid
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&bid, "id = ?", params.BidID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBidNotFound
			}
			return fmt.Errorf("failed to lock bid: %w", err)
		}

		// capture the seller before the owner projection moves
		var token schema.Token
		if err := tx.First(&token, "id = ?", bid.TokenID).Error; err != nil {
			return fmt.Errorf("failed to load token: %w", err)
		}

		// Conditional update guards against a concurrent accept, reject or
		// withdraw that slipped in before the row lock was taken
		result := tx.Model(&schema.Bid{}).
			Where("id = ? AND status = ?", params.BidID, domain.BidStatusActive).
			Updates(map[string]interface{}{
				"status":     domain.BidStatusAccepted,
				"tx_hash":    params.TxHash,
				"updated_at": params.AcceptedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to accept bid: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: bid %d is %s, not ACTIVE", domain.ErrInvalidState, params.BidID, bid.Status)
		}

		// Every other ACTIVE bid on the token loses in the same transaction
		if err := tx.Model(&schema.Bid{}).
			Where("token_id = ? AND id <> ? AND status = ?", bid.TokenID, bid.ID, domain.BidStatusActive).
			Updates(map[string]interface{}{
				"status":     domain.BidStatusOutbid,
				"updated_at": params.AcceptedAt,
			}).Error; err != nil {
			return fmt.Errorf("failed to outbid sibling bids: %w", err)
		}

		if err := tx.Model(&schema.Token{}).
			Where("id = ?", bid.TokenID).
			Updates(map[string]interface{}{
				"owner_address":   params.NewOwner,
				"owner_synced_at": params.AcceptedAt,
				"listed":          false,
			}).Error; err != nil {
			return fmt.Errorf("failed to update token owner: %w", err)
		}

		entry := schema.PriceHistoryEntry{
			EntryID:      params.PriceEntryID,
			ListingID:    bid.ListingID,
			BidID:        &bid.ID,
			EventType:    domain.PriceEventBidAccepted,
			Price:        bid.Amount,
			Currency:     bid.Currency,
			ActorAddress: &bid.BidderWallet,
			CreatedAt:    params.AcceptedAt,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append price history: %w", err)
		}

		if params.TxHash != nil {
			record := schema.Transaction{
				TxHash:      *params.TxHash,
				ListingID:   bid.ListingID,
				BidID:       &bid.ID,
				FromAddress: params.NewOwner,
				ToAddress:   valueOrEmpty(token.OwnerAddress),
				Amount:      bid.Amount,
				Currency:    bid.Currency,
				Status:      schema.TxStatusPending,
				CreatedAt:   params.AcceptedAt,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}
		}

		if err := tx.First(&accepted, "id = ?", params.BidID).Error; err != nil {
			return fmt.Errorf("failed to reload accepted bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &accepted, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *pgStore) RejectBid(ctx context.Context, params RejectBidParams) (*schema.Bid, error) {
	var rejected schema.Bid

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bid schema.Bid
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&bid, "id = ?", params.BidID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBidNotFound
			}
			return fmt.Errorf("failed to lock bid: %w", err)
		}

		result := tx.Model(&schema.Bid{}).
			Where("id = ? AND status = ?", params.BidID, domain.BidStatusActive).
			Updates(map[string]interface{}{
				"status":     domain.BidStatusRejected,
				"updated_at": params.RejectedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to reject bid: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: bid %d is %s, not ACTIVE", domain.ErrInvalidState, params.BidID, bid.Status)
		}

		entry := schema.PriceHistoryEntry{
			EntryID:      params.PriceEntryID,
			ListingID:    bid.ListingID,
			BidID:        &bid.ID,
			EventType:    domain.PriceEventBidRejected,
			Price:        bid.Amount,
			Currency:     bid.Currency,
			ActorAddress: &bid.BidderWallet,
			CreatedAt:    params.RejectedAt,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append price history: %w", err)
		}

		if err := tx.First(&rejected, "id = ?", params.BidID).Error; err != nil {
			return fmt.Errorf("failed to reload rejected bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rejected, nil
}

func (s *pgStore) UpdateBidStatus(ctx context.Context, bidID uint64, from, to domain.BidStatus) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Bid{}).
		Where("id = ? AND status = ?", bidID, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to update bid status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *pgStore) SetListingMintStatus(ctx context.Context, listingID uint64, status domain.MintStatus, errorReason, txHash *string) error {
	updates := map[string]interface{}{
		"mint_status":       status,
		"mint_error_reason": errorReason,
		"updated_at":        time.Now(),
	}
	if txHash != nil {
		updates["mint_tx_hash"] = txHash
	}
	if status == domain.MintStatusPending {
		updates["minted_at"] = time.Now()
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Listing{}).
		Where("id = ?", listingID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to set mint status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (s *pgStore) MarkListingMintPending(ctx context.Context, listingID uint64, txHash string) error {
	now := time.Now()
	result := s.db.WithContext(ctx).
		Model(&schema.Listing{}).
		Where("id = ? AND mint_status IN ?", listingID, []domain.MintStatus{
			domain.MintStatusNotStarted,
			domain.MintStatusFailed,
		}).
		Updates(map[string]interface{}{
			"mint_status":       domain.MintStatusPending,
			"mint_error_reason": nil,
			"mint_tx_hash":      txHash,
			"minted_at":         now,
			"updated_at":        now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark mint pending: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var listing schema.Listing
		if err := s.db.WithContext(ctx).First(&listing, "id = ?", listingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrListingNotFound
			}
			return fmt.Errorf("failed to get listing: %w", err)
		}
		return fmt.Errorf("%w: listing %d mint is %s", domain.ErrInvalidState, listingID, listing.MintStatus)
	}
	return nil
}

func (s *pgStore) ResetListingMintStatus(ctx context.Context, listingID uint64) (bool, error) {
	var reset bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing schema.Listing
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&listing, "id = ?", listingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrListingNotFound
			}
			return fmt.Errorf("failed to lock listing: %w", err)
		}

		if !listing.MintStatus.Resettable() {
			reset = false
			return nil
		}

		if err := tx.Model(&schema.Listing{}).
			Where("id = ?", listingID).
			Updates(map[string]interface{}{
				"mint_status":       domain.MintStatusNotStarted,
				"mint_error_reason": nil,
				"mint_tx_hash":      nil,
				"minted_at":         nil,
				"updated_at":        time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to reset mint status: %w", err)
		}
		reset = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return reset, nil
}

func (s *pgStore) BulkResetMintStatus(ctx context.Context, listingIDs []uint64) (int64, error) {
	// With no explicit targets, the bulk form is the stuck-mint cleanup:
	// every PENDING listing is failed out so it becomes resettable
	if len(listingIDs) == 0 {
		reason := "mint timed out"
		result := s.db.WithContext(ctx).
			Model(&schema.Listing{}).
			Where("mint_status = ?", domain.MintStatusPending).
			Updates(map[string]interface{}{
				"mint_status":       domain.MintStatusFailed,
				"mint_error_reason": reason,
				"updated_at":        time.Now(),
			})
		if result.Error != nil {
			return 0, fmt.Errorf("failed to fail out pending mints: %w", result.Error)
		}
		return result.RowsAffected, nil
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Listing{}).
		Where("id IN ? AND mint_status IN ?", listingIDs, []domain.MintStatus{
			domain.MintStatusFailed,
			domain.MintStatusNotStarted,
		}).
		Updates(map[string]interface{}{
			"mint_status":       domain.MintStatusNotStarted,
			"mint_error_reason": nil,
			"mint_tx_hash":      nil,
			"minted_at":         nil,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to bulk reset mint status: %w", result.Error)
	}
	return result.RowsAffected, nil
}
