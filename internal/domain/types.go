package domain

import (
	"fmt"
	"strings"
)

// CollectionKind identifies one of the two schema-bound collections
type CollectionKind string

const (
	CollectionKindRace        CollectionKind = "race"
	CollectionKindAchievement CollectionKind = "achievement"
)

// Valid checks if the collection kind is known
func (k CollectionKind) Valid() bool {
	return k == CollectionKindRace || k == CollectionKindAchievement
}

// ParseCollectionKind parses a collection kind from user input
func ParseCollectionKind(s string) (CollectionKind, error) {
	kind := CollectionKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCollectionKind, s)
	}
	return kind, nil
}

// RaceResult is the post-race summary produced by the race client.
// Optional numeric fields are pointers so that absent values are not minted as zero.
type RaceResult struct {
	Score         *int64    `json:"score,omitempty"`
	FastestLap    *float64  `json:"fastestLap,omitempty"`
	LapTimes      []float64 `json:"lapTimes,omitempty"`
	TopSpeed      *float64  `json:"topSpeed,omitempty"`
	AverageSpeed  *float64  `json:"averageSpeed,omitempty"`
	Crashes       *int64    `json:"crashes,omitempty"`
	TotalRaceTime *float64  `json:"totalRaceTime,omitempty"`
	CarType       *int64    `json:"carType,omitempty"`
	PlayerCount   *int64    `json:"playerCount,omitempty"`
	PlayerAddress string    `json:"playerAddress"`
}

// Achievement is an unlocked achievement to be minted for a player
type Achievement struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Points        int64  `json:"points"`
	PlayerAddress string `json:"playerAddress"`
}

// Attribute is a single {trait_type, value} pair stored on a token
type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// MintedToken is the ledger's view of a freshly minted token
type MintedToken struct {
	CollectionID uint64 `json:"collectionId"`
	TokenID      uint64 `json:"tokenId"`
	Owner        string `json:"owner"`
}

// MintResult is returned to callers of the mint endpoints.
// ImageURL is the transient provider URL; PinnedImageURL is the durable gateway URL.
type MintResult struct {
	Message        string `json:"message"`
	TokenID        uint64 `json:"tokenId"`
	Owner          string `json:"owner"`
	ImageURL       string `json:"imageUrl"`
	PinnedImageURL string `json:"pinnedImageUrl"`
}

// RaceRecord is a race result reconstructed from token attributes.
// Values are kept as the ledger returned them.
type RaceRecord struct {
	TokenID       uint64        `json:"tokenId"`
	Image         string        `json:"image,omitempty"`
	Score         interface{}   `json:"score,omitempty"`
	FastestLap    interface{}   `json:"fastestLap,omitempty"`
	LapTimes      []interface{} `json:"lapTimes"`
	TopSpeed      interface{}   `json:"topSpeed,omitempty"`
	AverageSpeed  interface{}   `json:"averageSpeed,omitempty"`
	Crashes       interface{}   `json:"eliminations,omitempty"`
	TotalRaceTime interface{}   `json:"totalRaceTime,omitempty"`
	CarType       interface{}   `json:"carType,omitempty"`
	PlayerCount   interface{}   `json:"playerCount,omitempty"`
}

// AchievementRecord is an achievement reconstructed from token attributes
type AchievementRecord struct {
	TokenID     uint64      `json:"tokenId"`
	Image       string      `json:"image,omitempty"`
	Title       interface{} `json:"title,omitempty"`
	Description interface{} `json:"description,omitempty"`
	Points      interface{} `json:"points,omitempty"`
}

// SkippedToken records a token left out of a listing and why
type SkippedToken struct {
	TokenID uint64 `json:"tokenId"`
	Reason  string `json:"reason"`
}

// GeoLocation is the result of resolving a free-text location
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

// IPFSGatewayURL builds the gateway URL for a CID
func IPFSGatewayURL(gateway, cid string) string {
	return fmt.Sprintf("%s/ipfs/%s", strings.TrimRight(gateway, "/"), cid)
}

// RaceListing is the result of listing a player's race tokens
type RaceListing struct {
	Races   []RaceRecord   `json:"races"`
	Skipped []SkippedToken `json:"skipped"`
}

// AchievementListing is the result of listing a player's achievement tokens
type AchievementListing struct {
	Achievements []AchievementRecord `json:"achievements"`
	Skipped      []SkippedToken      `json:"skipped"`
}
