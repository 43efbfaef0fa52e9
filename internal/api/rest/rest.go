package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/deedlane/marketplace/internal/api/middleware"
)

// SetupRoutes registers all marketplace routes on the engine
func (h *Handler) SetupRoutes(router *gin.Engine, auth *middleware.Authenticator) {
	router.GET("/health", h.health)

	v1 := router.Group("/api/v1")

	// listings are public marketplace data
	v1.GET("/listings", h.listListings)
	v1.GET("/listings/:id", h.getListing)
	v1.GET("/listings/:id/price-history", h.getPriceHistory)

	authed := v1.Group("")
	authed.Use(auth.Authenticate())
	{
		authed.GET("/bids", h.listBids)
		authed.POST("/bids/:id/accept", h.acceptBid)
		authed.POST("/bids/:id/reject", h.rejectBid)
		authed.POST("/bids/:id/withdraw", h.withdrawBid)

		admin := authed.Group("/mint-status")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/reset", h.resetMintStatus)
			admin.POST("/bulk-reset", h.bulkResetMintStatus)
		}
	}
}
