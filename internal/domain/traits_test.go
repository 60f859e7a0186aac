package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestRaceAttributes(t *testing.T) {
	result := RaceResult{
		Score:         int64Ptr(1000),
		FastestLap:    float64Ptr(75),
		LapTimes:      []float64{78, 76, 75.5, 77},
		TopSpeed:      float64Ptr(280),
		AverageSpeed:  float64Ptr(220),
		Crashes:       int64Ptr(0),
		TotalRaceTime: float64Ptr(306),
		CarType:       int64Ptr(1),
		PlayerCount:   int64Ptr(8),
		PlayerAddress: "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty",
	}

	attrs := RaceAttributes(result)
	require.Len(t, attrs, 9)

	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, a.TraitType)
	}
	assert.Equal(t, []string{
		"Score", "FastestLap", "LapTimes", "TopSpeed", "AverageSpeed",
		"TotoalEliminations", "TotalRaceTime", "CarType", "PlayerCount",
	}, names)

	laps, ok := FindAttribute(attrs, TraitLapTimes)
	require.True(t, ok)
	assert.Equal(t, "[78,76,75.5,77]", laps)

	crashes, ok := FindAttribute(attrs, TraitEliminations)
	require.True(t, ok)
	assert.Equal(t, int64(0), crashes)
}

func TestRaceAttributes_OmitsAbsentValues(t *testing.T) {
	attrs := RaceAttributes(RaceResult{Score: int64Ptr(5), PlayerAddress: "addr"})
	require.Len(t, attrs, 1)
	assert.Equal(t, TraitScore, attrs[0].TraitType)
	assert.Equal(t, int64(5), attrs[0].Value)
}

func TestAchievementAttributes(t *testing.T) {
	attrs := AchievementAttributes(Achievement{
		Title:       "Flawless Victory",
		Description: "Complete a race without crashing",
		Points:      100,
	})

	assert.Equal(t, []Attribute{
		{TraitType: "AchievementTitle", Value: "Flawless Victory"},
		{TraitType: "AcheivementDescription", Value: "Complete a race without crashing"},
		{TraitType: "achcivementPoints", Value: int64(100)},
	}, attrs)
}

func TestFindAttribute_ExactMatchOnly(t *testing.T) {
	attrs := []Attribute{
		{TraitType: "score", Value: 1},
		{TraitType: "Totaleliminations", Value: 2},
	}

	_, ok := FindAttribute(attrs, TraitScore)
	assert.False(t, ok)

	_, ok = FindAttribute(attrs, TraitEliminations)
	assert.False(t, ok)

	v, ok := FindAttribute(attrs, "score")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestParseCollectionKind(t *testing.T) {
	tests := []struct {
		input    string
		expected CollectionKind
		wantErr  bool
	}{
		{"race", CollectionKindRace, false},
		{" Achievement ", CollectionKindAchievement, false},
		{"trophy", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseCollectionKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCollectionKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestIPFSGatewayURL(t *testing.T) {
	assert.Equal(t, "https://gw.example/ipfs/bafy", IPFSGatewayURL("https://gw.example/", "bafy"))
	assert.Equal(t, "https://gw.example/ipfs/bafy", IPFSGatewayURL("https://gw.example", "bafy"))
}
