package rest

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrLocationRequired    = errors.New("location is required")
	ErrAddressRequired     = errors.New("address is required")
	ErrInvalidCollectionID = errors.New("collectionId must be a positive integer")
	ErrLocationTooLong     = errors.New("location is too long")
)

const MAX_LOCATION_LENGTH = 512

// GeocodeQueryParams holds query parameters for GET /geocode
type GeocodeQueryParams struct {
	Location string `form:"location"`
}

// Validate checks the query parameters
func (p *GeocodeQueryParams) Validate() error {
	p.Location = strings.TrimSpace(p.Location)
	if p.Location == "" {
		return ErrLocationRequired
	}
	if len(p.Location) > MAX_LOCATION_LENGTH {
		return ErrLocationTooLong
	}
	return nil
}

// PlayerTokensQueryParams holds the parameters for GET /players/:address/*
type PlayerTokensQueryParams struct {
	Address      string
	CollectionID uint64
}

// ParsePlayerTokensQuery reads the player address and the optional collectionId override.
// defaultCollectionID is used when no override is given.
func ParsePlayerTokensQuery(c *gin.Context, defaultCollectionID uint64) (*PlayerTokensQueryParams, error) {
	params := &PlayerTokensQueryParams{
		Address:      strings.TrimSpace(c.Param("address")),
		CollectionID: defaultCollectionID,
	}
	if params.Address == "" {
		return nil, ErrAddressRequired
	}

	if raw, ok := c.GetQuery("collectionId"); ok {
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil || id == 0 {
			return nil, ErrInvalidCollectionID
		}
		params.CollectionID = id
	}

	return params, nil
}
