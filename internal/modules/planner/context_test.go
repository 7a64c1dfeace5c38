package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeason(t *testing.T) {
	cases := map[time.Month]string{
		time.January:   "겨울",
		time.February:  "겨울",
		time.March:     "봄",
		time.April:     "봄",
		time.May:       "봄",
		time.June:      "여름",
		time.July:      "여름",
		time.August:    "여름",
		time.September: "가을",
		time.October:   "가을",
		time.November:  "가을",
		time.December:  "겨울",
	}
	for month, want := range cases {
		assert.Equal(t, want, Season(month), "month %s", month)
	}
}

func TestTravelStyle(t *testing.T) {
	assert.Equal(t, "단기 여행", TravelStyle(0))
	assert.Equal(t, "단기 여행", TravelStyle(1))
	assert.Equal(t, "단기 여행", TravelStyle(3))
	assert.Equal(t, "일반 여행", TravelStyle(4))
	assert.Equal(t, "일반 여행", TravelStyle(7))
	assert.Equal(t, "장기 여행", TravelStyle(8))
	assert.Equal(t, "장기 여행", TravelStyle(30))
}

func TestNormalizeDestination(t *testing.T) {
	assert.Equal(t, "Cebu, Philippines", NormalizeDestination("세부"))
	assert.Equal(t, "Cebu, Philippines", NormalizeDestination("필리핀 세부 여행"))
	assert.Equal(t, "Tokyo, Japan", NormalizeDestination("도쿄"))
	assert.Equal(t, "Seoul, South Korea", NormalizeDestination(" 서울 "))

	// Unknown destinations pass through untouched.
	assert.Equal(t, "제주도", NormalizeDestination("제주도"))
	assert.Equal(t, "Reykjavik", NormalizeDestination("Reykjavik"))
}
