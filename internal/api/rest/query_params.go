package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deedlane/marketplace/internal/domain"
)

type bidRole string

const (
	roleSent           bidRole = "sent"
	roleReceived       bidRole = "received"
	roleReceivedActive bidRole = "received_active"
)

func parseBidRole(c *gin.Context) (bidRole, error) {
	role := bidRole(c.DefaultQuery("role", string(roleSent)))
	switch role {
	case roleSent, roleReceived, roleReceivedActive:
		return role, nil
	default:
		return "", fmt.Errorf("invalid role %q", role)
	}
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func parsePagination(c *gin.Context) (limit, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		return 0, 0, fmt.Errorf("invalid limit")
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset")
	}
	return limit, offset, nil
}

func parseOwnerID(c *gin.Context) (*uint64, error) {
	raw := c.Query("owner")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("invalid owner")
	}
	return &id, nil
}

func parseListingStatus(c *gin.Context) (*domain.ListingStatus, error) {
	raw := c.Query("status")
	if raw == "" {
		return nil, nil
	}
	status := domain.ListingStatus(raw)
	if !domain.IsValidListingStatus(status) {
		return nil, fmt.Errorf("invalid status %q", raw)
	}
	return &status, nil
}
