package delivery

import (
	"TasteTrail-Backend/entities"
)

// Platform identifies a supported delivery platform. The set is closed:
// external-id lookup is an explicit switch over these values, not a
// string-keyed map over struct fields.
type Platform string

const (
	PlatformDoorDash      Platform = "DOORDASH"
	PlatformUberEats      Platform = "UBER_EATS"
	PlatformFantuan       Platform = "FANTUAN"
	PlatformSkipTheDishes Platform = "SKIP_THE_DISHES"
)

var allPlatforms = []Platform{
	PlatformDoorDash,
	PlatformUberEats,
	PlatformFantuan,
	PlatformSkipTheDishes,
}

func ParsePlatform(name string) (Platform, bool) {
	for _, p := range allPlatforms {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// ExternalID returns the merchant's listing id on the given platform,
// empty when the merchant is not listed there.
func ExternalID(m *entities.Merchant, platform Platform) string {
	switch platform {
	case PlatformDoorDash:
		return m.ExternalIDDoorDash
	case PlatformUberEats:
		return m.ExternalIDUberEats
	case PlatformFantuan:
		return m.ExternalIDFantuan
	case PlatformSkipTheDishes:
		return m.ExternalIDSkipTheDishes
	default:
		return ""
	}
}

// SetExternalID writes the merchant's listing id for the given platform.
func SetExternalID(m *entities.Merchant, platform Platform, externalID string) {
	switch platform {
	case PlatformDoorDash:
		m.ExternalIDDoorDash = externalID
	case PlatformUberEats:
		m.ExternalIDUberEats = externalID
	case PlatformFantuan:
		m.ExternalIDFantuan = externalID
	case PlatformSkipTheDishes:
		m.ExternalIDSkipTheDishes = externalID
	}
}
