package planner

import (
	"strings"
	"time"
)

// Season maps a calendar month to one of the four fixed Korean season labels.
func Season(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "겨울"
	case time.March, time.April, time.May:
		return "봄"
	case time.June, time.July, time.August:
		return "여름"
	default:
		return "가을"
	}
}

// TravelStyle classifies a trip length into the fixed Korean labels used by
// the prompt templates.
func TravelStyle(days int) string {
	switch {
	case days <= 3:
		return "단기 여행"
	case days <= 7:
		return "일반 여행"
	default:
		return "장기 여행"
	}
}

// destinationAliases maps Korean city names to a canonical "City, Country"
// form. Evaluated in order; first substring match wins.
var destinationAliases = []struct {
	keyword   string
	canonical string
}{
	{"도쿄", "Tokyo, Japan"},
	{"오사카", "Osaka, Japan"},
	{"서울", "Seoul, South Korea"},
	{"부산", "Busan, South Korea"},
	{"방콕", "Bangkok, Thailand"},
	{"세부", "Cebu, Philippines"},
	{"싱가포르", "Singapore"},
	{"홍콩", "Hong Kong"},
	{"타이베이", "Taipei, Taiwan"},
	{"파리", "Paris, France"},
	{"런던", "London, UK"},
	{"로마", "Rome, Italy"},
	{"바르셀로나", "Barcelona, Spain"},
	{"암스테르담", "Amsterdam, Netherlands"},
}

// NormalizeDestination canonicalizes well-known Korean destination names.
// Unmatched input passes through unchanged.
func NormalizeDestination(destination string) string {
	lower := strings.ToLower(strings.TrimSpace(destination))
	for _, alias := range destinationAliases {
		if strings.Contains(lower, alias.keyword) {
			return alias.canonical
		}
	}
	return destination
}
