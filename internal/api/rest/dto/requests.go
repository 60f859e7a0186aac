package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/feral-file/ff-race-nft/internal/domain"
)

var (
	ErrPlayerAddressRequired = errors.New("player address is required")
	ErrAchievementFields     = errors.New("player address, title, description, and points are required")
	ErrMessagesRequired      = errors.New("valid messages array is required")
)

// MintRaceRequest is the body of POST /mint-nft
type MintRaceRequest struct {
	Score         *int64    `json:"score"`
	FastestLap    *float64  `json:"fastestLap"`
	LapTimes      []float64 `json:"lapTimes"`
	TopSpeed      *float64  `json:"topSpeed"`
	AverageSpeed  *float64  `json:"averageSpeed"`
	Crashes       *int64    `json:"crashes"`
	TotalRaceTime *float64  `json:"totalRaceTime"`
	CarType       *int64    `json:"carType"`
	PlayerCount   *int64    `json:"playerCount"`
	PlayerAddress string    `json:"playerAddress"`
}

// Validate checks the request
func (r *MintRaceRequest) Validate() error {
	if strings.TrimSpace(r.PlayerAddress) == "" {
		return ErrPlayerAddressRequired
	}
	return nil
}

// ToDomain converts the request into a race result
func (r *MintRaceRequest) ToDomain() domain.RaceResult {
	return domain.RaceResult{
		Score:         r.Score,
		FastestLap:    r.FastestLap,
		LapTimes:      r.LapTimes,
		TopSpeed:      r.TopSpeed,
		AverageSpeed:  r.AverageSpeed,
		Crashes:       r.Crashes,
		TotalRaceTime: r.TotalRaceTime,
		CarType:       r.CarType,
		PlayerCount:   r.PlayerCount,
		PlayerAddress: strings.TrimSpace(r.PlayerAddress),
	}
}

// MintAchievementRequest is the body of POST /mint-achievement.
// Points is a pointer so that an explicit 0 is distinguishable from an absent field.
type MintAchievementRequest struct {
	PlayerAddress string `json:"playerAddress"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Points        *int64 `json:"points"`
}

// Validate checks the request
func (r *MintAchievementRequest) Validate() error {
	if strings.TrimSpace(r.PlayerAddress) == "" ||
		strings.TrimSpace(r.Title) == "" ||
		strings.TrimSpace(r.Description) == "" ||
		r.Points == nil {
		return ErrAchievementFields
	}
	return nil
}

// ToDomain converts the request into an achievement
func (r *MintAchievementRequest) ToDomain() domain.Achievement {
	return domain.Achievement{
		Title:         r.Title,
		Description:   r.Description,
		Points:        *r.Points,
		PlayerAddress: strings.TrimSpace(r.PlayerAddress),
	}
}

// GenerateImageRequest is the optional body of POST /generate-image
type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
}

// CompletionRequest is the body of POST /gpt-completion.
// Messages is kept raw so that a non-array value is reported as a validation error.
type CompletionRequest struct {
	Messages json.RawMessage `json:"messages"`
}

// ParseMessages decodes the messages array
func (r *CompletionRequest) ParseMessages() ([]goopenai.ChatCompletionMessage, error) {
	raw := bytes.TrimSpace(r.Messages)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrMessagesRequired
	}

	var messages []goopenai.ChatCompletionMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, ErrMessagesRequired
	}
	return messages, nil
}
