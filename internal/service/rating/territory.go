package rating

import (
	"strconv"
	"strings"

	"github.com/mreiner/compquote/internal/domain"
)

// ResolveTerritory maps an address to a rated territory. Matching order,
// first match wins:
//
//  1. case-insensitive substring match of the city within a territory's
//     description
//  2. ZIP code inside a territory's ranges; with several matches, the
//     highest rate multiplier wins
//  3. a territory whose code ends in "-RUR" or "-BASE"
//  4. the first territory on file, or a synthetic {state}-BASE at
//     multiplier 1.0 when the state has none
//
// It never fails: every state/address combination resolves to some
// multiplier.
func ResolveTerritory(address domain.Address, stateCode string, territories []*domain.Territory) *domain.Territory {
	if len(territories) == 0 {
		return baseTerritory(stateCode)
	}

	if address.City != "" {
		city := strings.ToLower(address.City)
		for _, t := range territories {
			if strings.Contains(strings.ToLower(t.Description), city) {
				return t
			}
		}
	}

	if match := matchByZip(address.ZipCode, territories); match != nil {
		return match
	}

	for _, t := range territories {
		if strings.HasSuffix(t.TerritoryCode, "-RUR") || strings.HasSuffix(t.TerritoryCode, "-BASE") {
			return t
		}
	}

	return territories[0]
}

func matchByZip(zipCode string, territories []*domain.Territory) *domain.Territory {
	zip, err := strconv.Atoi(zipCode)
	if err != nil {
		return nil
	}

	var best *domain.Territory
	for _, t := range territories {
		for _, r := range t.ZipRanges {
			if zip >= r.Start && zip <= r.End {
				// ties keep the earliest territory on file
				if best == nil || t.RateMultiplier > best.RateMultiplier {
					best = t
				}
				break
			}
		}
	}

	return best
}

func baseTerritory(stateCode string) *domain.Territory {
	return &domain.Territory{
		TerritoryCode:  stateCode + "-BASE",
		StateCode:      stateCode,
		RateMultiplier: 1.0,
		Description:    "Base Rate Territory",
	}
}
