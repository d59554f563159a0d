package earth

import "math"

type FloodTrend struct {
	Analysis Analysis `json:"analysis"`
}

type Analysis struct {
	NextWeekScore *float64    `json:"next_week_score"`
	Message       string      `json:"message"`
	AirQuality    *AirQuality `json:"air_quality,omitempty"`
}

// Score is the next-week score rounded half away from zero.
func (a Analysis) Score() int {
	if a.NextWeekScore == nil {
		return 0
	}
	return int(math.Round(*a.NextWeekScore))
}

type AirQuality struct {
	Current *AirQualityReading `json:"current,omitempty"`
}

type AirQualityReading struct {
	USAQI *float64 `json:"us_aqi,omitempty"`
}

// USAQI returns the reported US AQI, or 0 when the reading is absent.
func (a *AirQuality) USAQI() float64 {
	if a == nil || a.Current == nil || a.Current.USAQI == nil {
		return 0
	}
	return *a.Current.USAQI
}

type InfraStatus struct {
	PowerGridRisk   string `json:"power_grid_risk"`
	RoadNetworkRisk string `json:"road_network_risk"`
	InternetRisk    string `json:"internet_risk"`
}
