// Package geo holds the small amount of geography the console needs.
package geo

// Ocean names the body of water monitored for a location.
type Ocean string

const (
	IndianOcean   Ocean = "INDIAN OCEAN"
	AtlanticOcean Ocean = "ATLANTIC OCEAN"
)

const (
	indianOceanMinLon = 20.0
	indianOceanMaxLon = 120.0
)

// OceanFor classifies a longitude: the open interval (20, 120) is the
// Indian Ocean, everything else is treated as Atlantic.
func OceanFor(lon float64) Ocean {
	if lon > indianOceanMinLon && lon < indianOceanMaxLon {
		return IndianOcean
	}
	return AtlanticOcean
}

func (o Ocean) String() string { return string(o) }
