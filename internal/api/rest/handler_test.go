package rest

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deedlane/marketplace/internal/adapter"
	"github.com/deedlane/marketplace/internal/api/middleware"
	"github.com/deedlane/marketplace/internal/bids"
	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/minting"
	"github.com/deedlane/marketplace/internal/mocks"
	"github.com/deedlane/marketplace/internal/store/schema"
)

const (
	ownerWallet  = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
	bidderWallet = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
	contractAddr = "0x06012c8cf97BEaD5deAe237070F9587f8E7A266d"
	testAPIKey   = "test-admin-key"
)

type testEnv struct {
	router    *gin.Engine
	store     *mocks.MockStore
	resolver  *mocks.MockOwnerResolver
	signToken func(wallet string, admin bool) string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStore(ctrl)
	resolver := mocks.NewMockOwnerResolver(ctrl)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	auth, err := middleware.NewAuthenticator(string(pubPEM), []string{testAPIKey})
	require.NoError(t, err)

	bidService := bids.NewService(st, resolver, nil, adapter.NewClock(), 2)
	t.Cleanup(bidService.Stop)

	handler := NewHandler(st, bidService, minting.NewTracker(st))
	router := gin.New()
	handler.SetupRoutes(router, auth)

	return &testEnv{
		router:   router,
		store:    st,
		resolver: resolver,
		signToken: func(wallet string, admin bool) string {
			token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
				"wallet":  wallet,
				"user_id": 1,
				"admin":   admin,
				"exp":     time.Now().Add(time.Hour).Unix(),
			})
			signed, err := token.SignedString(key)
			require.NoError(t, err)
			return signed
		},
	}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func activeBid(id uint64) *schema.Bid {
	contract := contractAddr
	return &schema.Bid{
		ID:           id,
		ListingID:    1,
		TokenID:      10,
		BidderWallet: bidderWallet,
		Amount:       "125000",
		Currency:     domain.CurrencyUSDC,
		Status:       domain.BidStatusActive,
		Token: &schema.Token{
			ID:          10,
			ListingID:   1,
			TokenNumber: "7",
			MintStatus:  domain.MintStatusCompletedToken,
		},
		Listing: &schema.Listing{ID: 1, ContractAddress: &contract},
	}
}

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListBidsRequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/bids", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListBidsSent(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().
		GetBidsByBidderWallet(gomock.Any(), bidderWallet).
		Return([]schema.Bid{*activeBid(1)}, nil)
	env.resolver.EXPECT().
		OwnerOf(gomock.Any(), contractAddr, "7").
		Return(ownerWallet, nil)

	w := env.do(http.MethodGet, "/api/v1/bids?role=sent", env.signToken(bidderWallet, false), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bids []struct {
			ID           uint64  `json:"id"`
			CurrentOwner *string `json:"current_owner"`
		} `json:"bids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bids, 1)
	require.NotNil(t, resp.Bids[0].CurrentOwner)
	assert.Equal(t, ownerWallet, *resp.Bids[0].CurrentOwner)
}

func TestListBidsInvalidRole(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/bids?role=everything", env.signToken(bidderWallet, false), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBidsOtherWalletForbidden(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/bids?address="+ownerWallet,
		env.signToken(bidderWallet, false), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAcceptBid(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().GetBidByID(gomock.Any(), uint64(1)).Return(activeBid(1), nil)
	env.resolver.EXPECT().OwnerOf(gomock.Any(), contractAddr, "7").Return(ownerWallet, nil)

	accepted := activeBid(1)
	accepted.Status = domain.BidStatusAccepted
	env.store.EXPECT().AcceptBid(gomock.Any(), gomock.Any()).Return(accepted, nil)

	w := env.do(http.MethodPost, "/api/v1/bids/1/accept", env.signToken(ownerWallet, false), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ACCEPTED"`)
}

func TestAcceptBidConflict(t *testing.T) {
	env := setupTestEnv(t)

	bid := activeBid(1)
	bid.Status = domain.BidStatusWithdrawn
	env.store.EXPECT().GetBidByID(gomock.Any(), uint64(1)).Return(bid, nil)

	w := env.do(http.MethodPost, "/api/v1/bids/1/accept", env.signToken(ownerWallet, false), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAcceptBidChainDown(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().GetBidByID(gomock.Any(), uint64(1)).Return(activeBid(1), nil)
	env.resolver.EXPECT().OwnerOf(gomock.Any(), contractAddr, "7").
		Return("", domain.ErrUpstreamUnavailable)

	w := env.do(http.MethodPost, "/api/v1/bids/1/accept", env.signToken(ownerWallet, false), nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAcceptBidNotFound(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().GetBidByID(gomock.Any(), uint64(99)).Return(nil, nil)

	w := env.do(http.MethodPost, "/api/v1/bids/99/accept", env.signToken(ownerWallet, false), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWithdrawBid(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().GetBidByID(gomock.Any(), uint64(1)).Return(activeBid(1), nil)
	env.store.EXPECT().
		UpdateBidStatus(gomock.Any(), uint64(1), domain.BidStatusActive, domain.BidStatusWithdrawn).
		Return(true, nil)
	withdrawn := activeBid(1)
	withdrawn.Status = domain.BidStatusWithdrawn
	env.store.EXPECT().GetBidByID(gomock.Any(), uint64(1)).Return(withdrawn, nil)

	w := env.do(http.MethodPost, "/api/v1/bids/1/withdraw", env.signToken(bidderWallet, false), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithdrawBidNotBidder(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().GetBidByID(gomock.Any(), uint64(1)).Return(activeBid(1), nil)

	w := env.do(http.MethodPost, "/api/v1/bids/1/withdraw", env.signToken(ownerWallet, false), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetListingNotFound(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().GetListingByID(gomock.Any(), uint64(5)).Return(nil, nil)

	w := env.do(http.MethodGet, "/api/v1/listings/5", env.signToken(bidderWallet, false), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPriceHistory(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().GetListingByID(gomock.Any(), uint64(1)).
		Return(&schema.Listing{ID: 1}, nil)
	env.store.EXPECT().GetPriceHistory(gomock.Any(), uint64(1)).
		Return([]schema.PriceHistoryEntry{{
			EntryID:   "01J8ZQ2D4N8XWVYRK3T1H5B9FC",
			ListingID: 1,
			EventType: domain.PriceEventBidAccepted,
			Price:     "125000",
			Currency:  domain.CurrencyUSDC,
		}}, nil)

	w := env.do(http.MethodGet, "/api/v1/listings/1/price-history", env.signToken(bidderWallet, false), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "BID_ACCEPTED")
}

func TestResetMintStatusRequiresAdmin(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/mint-status/reset",
		env.signToken(ownerWallet, false), map[string]interface{}{"listing_id": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResetMintStatusWithAPIKey(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().ResetListingMintStatus(gomock.Any(), uint64(1)).Return(true, nil)

	data, _ := json.Marshal(map[string]interface{}{"listing_id": 1})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mint-status/reset", bytes.NewReader(data))
	req.Header.Set("X-API-Key", testAPIKey)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetMintStatusConflict(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().ResetListingMintStatus(gomock.Any(), uint64(1)).Return(false, nil)

	w := env.do(http.MethodPost, "/api/v1/mint-status/reset",
		env.signToken(ownerWallet, true), map[string]interface{}{"listing_id": 1})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBulkResetMintStatus(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().BulkResetMintStatus(gomock.Any(), []uint64{1, 2}).Return(int64(2), nil)

	w := env.do(http.MethodPost, "/api/v1/mint-status/bulk-reset",
		env.signToken(ownerWallet, true), map[string]interface{}{"listing_ids": []uint64{1, 2}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"affected":2`)
}

func TestBulkResetMintStatusNoBody(t *testing.T) {
	env := setupTestEnv(t)

	env.store.EXPECT().BulkResetMintStatus(gomock.Any(), gomock.Nil()).Return(int64(3), nil)

	w := env.do(http.MethodPost, "/api/v1/mint-status/bulk-reset",
		env.signToken(ownerWallet, true), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"affected":3`)
}
