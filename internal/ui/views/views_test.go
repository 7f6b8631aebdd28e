package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bustrip/internal/domain"
)

func TestMonthGridStartsOnMonday(t *testing.T) {
	// 1 September 2025 is a Monday
	weeks := MonthGrid(time.Date(2025, time.September, 17, 0, 0, 0, 0, time.UTC))
	require.Len(t, weeks, 5)
	assert.Equal(t, 1, weeks[0][0].Day())
	assert.Equal(t, 30, weeks[4][1].Day())
	assert.True(t, weeks[4][2].IsZero())

	// 1 June 2025 is a Sunday
	weeks = MonthGrid(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, weeks, 6)
	assert.True(t, weeks[0][5].IsZero())
	assert.Equal(t, 1, weeks[0][6].Day())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "5h 30m", FormatMinutes(330))
	assert.Equal(t, "0h 45m", FormatMinutes(45))
	assert.Equal(t, "0h 0m", FormatMinutes(-3))
	assert.Equal(t, "₹1,250.5", FormatPrice(1250.5))
	assert.Equal(t, "₹450", FormatPrice(450))
}

func TestDeparts(t *testing.T) {
	now := time.Date(2025, time.September, 1, 7, 0, 0, 0, time.UTC)
	bus := domain.Bus{DepartureTime: "10:00", Date: now}
	assert.Equal(t, "3 hours from now", Departs(bus, now))

	bus.DepartureTime = "soon"
	assert.Equal(t, "departure unknown", Departs(bus, now))
}

func TestRouteDetailsListsStops(t *testing.T) {
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	bus := domain.Bus{
		Name:   "Shivneri",
		Number: "MH-12",
		Route: domain.Route{
			Name:          "Pune Mumbai Express",
			Number:        "R-7",
			StartLocation: "Pune",
			EndLocation:   "Mumbai",
			Distance:      148.5,
			EstimatedTime: 210,
			Stops: []domain.Stop{
				{Name: "Swargate", DepartureTime: day.Add(8 * time.Hour)},
				{Name: "Lonavala", ArrivalTime: day.Add(9*time.Hour + 30*time.Minute), DepartureTime: day.Add(9*time.Hour + 40*time.Minute)},
				{Name: "Dadar", ArrivalTime: day.Add(11*time.Hour + 30*time.Minute)},
			},
		},
		From:           "Pune",
		To:             "Mumbai",
		DepartureTime:  "08:00",
		ArrivalTime:    "11:30",
		Price:          450,
		SeatsAvailable: 12,
	}

	plain := StripANSI(RouteDetails(bus))
	assert.Contains(t, plain, "Pune Mumbai Express (R-7)")
	assert.Contains(t, plain, "148.5 km, about 3h 30m")
	assert.Contains(t, plain, "Stops (3)")
	assert.Contains(t, plain, "arr --:--  dep 08:00")
	assert.Contains(t, plain, "arr 09:30  dep 09:40")
	assert.Contains(t, plain, "arr 11:30  dep --:--")
	assert.Less(t, strings.Index(plain, "Swargate"), strings.Index(plain, "Dadar"))
}

func TestRouteDetailsWithoutStops(t *testing.T) {
	plain := StripANSI(RouteDetails(domain.Bus{Name: "Night Rider"}))
	assert.Contains(t, plain, "No stop information")
}

func TestRenderSegmentsShowsDigits(t *testing.T) {
	r := NewRenderer()
	out := StripANSI(r.RenderSegments([]string{"4", "2", "", ""}, 2))
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "2")
	assert.Equal(t, 2, strings.Count(out, "\n"), "one row of bordered boxes")
}

func TestSeatColor(t *testing.T) {
	assert.Equal(t, "203", SeatColor(0))
	assert.Equal(t, "214", SeatColor(5))
	assert.Equal(t, "78", SeatColor(40))
}
