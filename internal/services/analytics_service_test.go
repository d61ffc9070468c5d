package services

import (
	"reflect"
	"testing"
	"time"

	"travelmavericks/internal/domain/models"
)

func mkBooking(trip string, total int64, bookedAt time.Time) models.Booking {
	return models.Booking{
		Trip:        models.Trip{ID: trip, Name: trip},
		TotalAmount: total,
		Status:      models.BookingConfirmed,
		BookedAt:    bookedAt,
	}
}

func TestOverviewCountsCancelledRevenue(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		mkBooking("zanzibar", 10000, now),
		mkBooking("kruger", 8000, now),
	}
	bookings[1].Status = models.BookingCancelled

	stats := []models.CustomerStat{
		{Email: "a@x.com", BookingCount: 1},
		{Email: "b@x.com", BookingCount: 3},
		{Email: "c@x.com", BookingCount: 10},
	}

	o := ComputeOverview(bookings, stats)
	if o.TotalBookings != 2 {
		t.Fatalf("total bookings = %d, want 2", o.TotalBookings)
	}
	// revenue sums over all bookings regardless of status
	if o.TotalRevenue != 18000 {
		t.Fatalf("total revenue = %d, want 18000", o.TotalRevenue)
	}
	if o.TotalCustomers != 3 {
		t.Fatalf("total customers = %d, want 3", o.TotalCustomers)
	}
	if o.LoyalCustomers != 2 {
		t.Fatalf("loyal customers = %d, want 2", o.LoyalCustomers)
	}
}

func TestPopularDestinationsEmpty(t *testing.T) {
	out := ComputePopularDestinations(nil)
	if out == nil {
		t.Fatalf("want empty slice, got nil")
	}
	if len(out) != 0 {
		t.Fatalf("empty booking list must yield no entries, got %d", len(out))
	}
}

func TestPopularDestinationsTopFive(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{}
	names := []string{"a", "b", "c", "d", "e", "f"}
	for i, name := range names {
		for j := 0; j <= i; j++ {
			bookings = append(bookings, mkBooking(name, 100, now))
		}
	}

	out := ComputePopularDestinations(bookings)
	if len(out) != 5 {
		t.Fatalf("want top 5, got %d", len(out))
	}
	if out[0].Label != "f" || out[0].Count != 6 {
		t.Fatalf("top destination = %s/%d, want f/6", out[0].Label, out[0].Count)
	}
	if out[0].Percent != 100 {
		t.Fatalf("top bar must normalize to 100%%, got %f", out[0].Percent)
	}
	if out[4].Label != "b" {
		t.Fatalf("fifth destination = %s, want b", out[4].Label)
	}
}

func TestMonthlyRevenueInsertionOrderLastSix(t *testing.T) {
	base := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{}
	for m := 0; m < 8; m++ {
		bookings = append(bookings, mkBooking("x", int64(1000*(m+1)), base.AddDate(0, m, 0)))
	}

	out := ComputeMonthlyRevenue(bookings)
	if len(out) != 6 {
		t.Fatalf("want 6 periods, got %d", len(out))
	}
	if out[0].Month != "Mar 2025" {
		t.Fatalf("first kept period = %s, want Mar 2025", out[0].Month)
	}
	if out[5].Month != "Aug 2025" || out[5].Revenue != 8000 {
		t.Fatalf("last period = %s/%d, want Aug 2025/8000", out[5].Month, out[5].Revenue)
	}
}

func TestDailyTrendAlwaysSevenEntries(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	out := ComputeDailyTrend(nil, now)
	if len(out) != 7 {
		t.Fatalf("empty history: want 7 entries, got %d", len(out))
	}
	for _, e := range out {
		if e.Count != 0 {
			t.Fatalf("zero-day count = %d, want 0", e.Count)
		}
		if e.Percent != 0 {
			t.Fatalf("zero-day percent must not divide by zero, got %f", e.Percent)
		}
	}

	bookings := []models.Booking{
		mkBooking("x", 100, now),
		mkBooking("x", 100, now),
		mkBooking("x", 100, now.AddDate(0, 0, -2)),
		mkBooking("x", 100, now.AddDate(0, 0, -30)), // outside window
	}
	out = ComputeDailyTrend(bookings, now)
	if len(out) != 7 {
		t.Fatalf("want 7 entries, got %d", len(out))
	}
	if out[6].Count != 2 {
		t.Fatalf("today count = %d, want 2", out[6].Count)
	}
	if out[4].Count != 1 {
		t.Fatalf("two days ago count = %d, want 1", out[4].Count)
	}
	total := 0
	for _, e := range out {
		total += e.Count
	}
	if total != 3 {
		t.Fatalf("window total = %d, want 3 (old booking excluded)", total)
	}
}

func TestLoyaltyDistribution(t *testing.T) {
	if out := ComputeLoyaltyDistribution(nil); len(out) != 0 {
		t.Fatalf("empty customers must yield no buckets, got %d", len(out))
	}

	stats := []models.CustomerStat{
		{BookingCount: 1},
		{BookingCount: 2},
		{BookingCount: 5},
		{BookingCount: 12},
	}
	out := ComputeLoyaltyDistribution(stats)
	if len(out) != 4 {
		t.Fatalf("want 4 buckets, got %d", len(out))
	}
	want := []int{1, 1, 1, 1}
	for i, e := range out {
		if e.Count != want[i] {
			t.Fatalf("bucket %s = %d, want %d", e.Label, e.Count, want[i])
		}
		if e.Percent != 25 {
			t.Fatalf("bucket %s percent = %f, want 25", e.Label, e.Percent)
		}
	}
}

func TestAggregatesIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		mkBooking("zanzibar", 10000, now),
		mkBooking("kruger", 8000, now.AddDate(0, 0, -1)),
		mkBooking("zanzibar", 10000, now.AddDate(0, -1, 0)),
	}
	stats := []models.CustomerStat{{BookingCount: 2}, {BookingCount: 4}}

	first := ComputePopularDestinations(bookings)
	second := ComputePopularDestinations(bookings)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("popular destinations not idempotent")
	}

	if !reflect.DeepEqual(ComputeMonthlyRevenue(bookings), ComputeMonthlyRevenue(bookings)) {
		t.Fatalf("monthly revenue not idempotent")
	}
	if !reflect.DeepEqual(ComputeDailyTrend(bookings, now), ComputeDailyTrend(bookings, now)) {
		t.Fatalf("daily trend not idempotent")
	}
	if !reflect.DeepEqual(ComputeLoyaltyDistribution(stats), ComputeLoyaltyDistribution(stats)) {
		t.Fatalf("loyalty distribution not idempotent")
	}
}
