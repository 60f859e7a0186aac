package domain

import "encoding/json"

// Trait names stored on minted tokens. Several are misspelled; they are the names
// already present on chain and must not be corrected without a migration.
const (
	TraitScore         = "Score"
	TraitFastestLap    = "FastestLap"
	TraitLapTimes      = "LapTimes"
	TraitTopSpeed      = "TopSpeed"
	TraitAverageSpeed  = "AverageSpeed"
	TraitEliminations  = "TotoalEliminations"
	TraitTotalRaceTime = "TotalRaceTime"
	TraitCarType       = "CarType"
	TraitPlayerCount   = "PlayerCount"

	TraitAchievementTitle       = "AchievementTitle"
	TraitAchievementDescription = "AcheivementDescription"
	TraitAchievementPoints      = "achcivementPoints"
)

// RaceAttributes builds the attribute list for a race result.
// Absent optional values are left out; lap times are stored as a JSON array string.
func RaceAttributes(r RaceResult) []Attribute {
	attrs := make([]Attribute, 0, 9)
	appendIf := func(name string, present bool, v interface{}) {
		if present {
			attrs = append(attrs, Attribute{TraitType: name, Value: v})
		}
	}

	appendIf(TraitScore, r.Score != nil, derefInt(r.Score))
	appendIf(TraitFastestLap, r.FastestLap != nil, derefFloat(r.FastestLap))
	if r.LapTimes != nil {
		laps, _ := json.Marshal(r.LapTimes)
		attrs = append(attrs, Attribute{TraitType: TraitLapTimes, Value: string(laps)})
	}
	appendIf(TraitTopSpeed, r.TopSpeed != nil, derefFloat(r.TopSpeed))
	appendIf(TraitAverageSpeed, r.AverageSpeed != nil, derefFloat(r.AverageSpeed))
	appendIf(TraitEliminations, r.Crashes != nil, derefInt(r.Crashes))
	appendIf(TraitTotalRaceTime, r.TotalRaceTime != nil, derefFloat(r.TotalRaceTime))
	appendIf(TraitCarType, r.CarType != nil, derefInt(r.CarType))
	appendIf(TraitPlayerCount, r.PlayerCount != nil, derefInt(r.PlayerCount))

	return attrs
}

// AchievementAttributes builds the attribute list for an achievement
func AchievementAttributes(a Achievement) []Attribute {
	return []Attribute{
		{TraitType: TraitAchievementTitle, Value: a.Title},
		{TraitType: TraitAchievementDescription, Value: a.Description},
		{TraitType: TraitAchievementPoints, Value: a.Points},
	}
}

// FindAttribute returns the value of the first attribute whose trait type equals name exactly
func FindAttribute(attrs []Attribute, name string) (interface{}, bool) {
	for _, attr := range attrs {
		if attr.TraitType == name {
			return attr.Value, true
		}
	}
	return nil, false
}

func derefInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func derefFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
