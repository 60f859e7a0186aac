package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/providers/unique"
)

// tokenData is the JSON document stored in the tokenData property
type tokenData struct {
	Image      json.RawMessage    `json:"image"`
	Attributes []domain.Attribute `json:"attributes"`
}

// tokenDataProperty locates the tokenData property by key, falling back to its position
func tokenDataProperty(props []unique.Property) (string, bool) {
	for _, p := range props {
		if p.Key == domain.TOKEN_DATA_PROPERTY_KEY {
			return p.Value, true
		}
	}
	if len(props) > domain.TOKEN_DATA_PROPERTY_INDEX {
		return props[domain.TOKEN_DATA_PROPERTY_INDEX].Value, true
	}
	return "", false
}

// decodeTokenData parses the tokenData property, keeping numbers as json.Number
func (c *client) decodeTokenData(token *unique.Token) (*tokenData, error) {
	raw, ok := tokenDataProperty(token.Properties)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, domain.ErrTokenDataMissing
	}

	var data tokenData
	if err := c.json.UnmarshalNumbers([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenDataMalformed, err)
	}
	// null, {} and image-only documents carry nothing to rebuild a record from
	if data.Attributes == nil {
		return nil, fmt.Errorf("%w: no attributes", domain.ErrTokenDataMalformed)
	}

	return &data, nil
}

// imageURL accepts both a plain URL and an {"url": ...} object
func (d *tokenData) imageURL() string {
	if len(d.Image) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(d.Image, &s); err == nil {
		return s
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(d.Image, &obj); err == nil {
		return obj.URL
	}
	return ""
}

func (d *tokenData) attr(name string) interface{} {
	v, _ := domain.FindAttribute(d.Attributes, name)
	return v
}

// raceRecord rebuilds a race record from token attributes.
// Fields are matched by exact trait name; a missing or differently spelled trait leaves the field empty.
func (c *client) raceRecord(tokenID uint64, d *tokenData) (*domain.RaceRecord, error) {
	laps, err := c.lapTimes(d)
	if err != nil {
		return nil, err
	}

	return &domain.RaceRecord{
		TokenID:       tokenID,
		Image:         d.imageURL(),
		Score:         d.attr(domain.TraitScore),
		FastestLap:    d.attr(domain.TraitFastestLap),
		LapTimes:      laps,
		TopSpeed:      d.attr(domain.TraitTopSpeed),
		AverageSpeed:  d.attr(domain.TraitAverageSpeed),
		Crashes:       d.attr(domain.TraitEliminations),
		TotalRaceTime: d.attr(domain.TraitTotalRaceTime),
		CarType:       d.attr(domain.TraitCarType),
		PlayerCount:   d.attr(domain.TraitPlayerCount),
	}, nil
}

// lapTimes decodes the LapTimes trait, stored as a JSON array string
func (c *client) lapTimes(d *tokenData) ([]interface{}, error) {
	laps := []interface{}{}

	v, ok := domain.FindAttribute(d.Attributes, domain.TraitLapTimes)
	if !ok || v == nil {
		return laps, nil
	}

	switch val := v.(type) {
	case string:
		if err := c.json.UnmarshalNumbers([]byte(val), &laps); err != nil {
			return nil, fmt.Errorf("%w: lap times: %v", domain.ErrTokenDataMalformed, err)
		}
		if laps == nil {
			laps = []interface{}{}
		}
	case []interface{}:
		laps = val
	default:
		return nil, fmt.Errorf("%w: lap times has type %T", domain.ErrTokenDataMalformed, v)
	}

	return laps, nil
}

func achievementRecord(tokenID uint64, d *tokenData) domain.AchievementRecord {
	return domain.AchievementRecord{
		TokenID:     tokenID,
		Image:       d.imageURL(),
		Title:       d.attr(domain.TraitAchievementTitle),
		Description: d.attr(domain.TraitAchievementDescription),
		Points:      d.attr(domain.TraitAchievementPoints),
	}
}
