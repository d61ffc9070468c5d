package services

import (
	"sort"
	"time"

	"travelmavericks/internal/domain/models"
	"travelmavericks/internal/pricing"
	"travelmavericks/internal/repositories"
	"travelmavericks/internal/utils"
)

// AnalyticsService derives admin dashboard views from the full booking list
// and customer stats. Every view is recomputed on demand; nothing is cached
// incrementally, so recomputing twice from the same state yields the same
// result.
type AnalyticsService struct {
	BookingRepo  repositories.BookingRepository
	CustomerRepo repositories.CustomerStatRepository
}

type Overview struct {
	TotalBookings  int   `json:"totalBookings"`
	TotalRevenue   int64 `json:"totalRevenue"`
	TotalCustomers int   `json:"totalCustomers"`
	LoyalCustomers int   `json:"loyalCustomers"`
}

// ChartEntry is one bar in a count-based chart. Percent is the bar size
// normalized against the largest bucket (divisor floored at 1).
type ChartEntry struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type RevenueEntry struct {
	Month   string  `json:"month"`
	Revenue int64   `json:"revenue"`
	Percent float64 `json:"percent"`
}

func (s AnalyticsService) Overview() (Overview, error) {
	bookings, err := s.BookingRepo.ListAll()
	if err != nil {
		return Overview{}, err
	}
	stats, err := s.CustomerRepo.List()
	if err != nil {
		return Overview{}, err
	}
	return ComputeOverview(bookings, stats), nil
}

func (s AnalyticsService) PopularDestinations() ([]ChartEntry, error) {
	bookings, err := s.BookingRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return ComputePopularDestinations(bookings), nil
}

func (s AnalyticsService) MonthlyRevenue() ([]RevenueEntry, error) {
	bookings, err := s.BookingRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return ComputeMonthlyRevenue(bookings), nil
}

func (s AnalyticsService) DailyTrend(now time.Time) ([]ChartEntry, error) {
	bookings, err := s.BookingRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return ComputeDailyTrend(bookings, now), nil
}

func (s AnalyticsService) LoyaltyDistribution() ([]ChartEntry, error) {
	stats, err := s.CustomerRepo.List()
	if err != nil {
		return nil, err
	}
	return ComputeLoyaltyDistribution(stats), nil
}

// ComputeOverview sums revenue over all bookings regardless of status;
// loyal customers are those at or past the admin eligibility threshold.
func ComputeOverview(bookings []models.Booking, stats []models.CustomerStat) Overview {
	o := Overview{
		TotalBookings:  len(bookings),
		TotalCustomers: len(stats),
	}
	for _, b := range bookings {
		o.TotalRevenue += b.TotalAmount
	}
	for _, s := range stats {
		if pricing.DiscountEligible(s.BookingCount) {
			o.LoyalCustomers++
		}
	}
	return o
}

// ComputePopularDestinations counts bookings per trip name (snapshot name,
// so renames after booking do not regroup history) and returns the top 5
// by count. An empty booking list yields an empty slice, which callers
// render as an explicit no-data state.
func ComputePopularDestinations(bookings []models.Booking) []ChartEntry {
	counts := map[string]int{}
	order := []string{}
	for _, b := range bookings {
		name := b.Trip.Name
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}
	if len(order) == 0 {
		return []ChartEntry{}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}

	max := counts[order[0]]
	if max < 1 {
		max = 1
	}
	out := make([]ChartEntry, 0, len(order))
	for _, name := range order {
		out = append(out, ChartEntry{
			Label:   name,
			Count:   counts[name],
			Percent: float64(counts[name]) / float64(max) * 100,
		})
	}
	return out
}

// ComputeMonthlyRevenue groups revenue by month/year of booking creation and
// keeps the last 6 periods in insertion order (order of first appearance in
// the booking list, not sorted by calendar).
func ComputeMonthlyRevenue(bookings []models.Booking) []RevenueEntry {
	totals := map[string]int64{}
	order := []string{}
	for _, b := range bookings {
		label := utils.MonthLabel(b.BookedAt)
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += b.TotalAmount
	}
	if len(order) == 0 {
		return []RevenueEntry{}
	}
	if len(order) > 6 {
		order = order[len(order)-6:]
	}

	var max int64 = 1
	for _, label := range order {
		if totals[label] > max {
			max = totals[label]
		}
	}
	out := make([]RevenueEntry, 0, len(order))
	for _, label := range order {
		out = append(out, RevenueEntry{
			Month:   label,
			Revenue: totals[label],
			Percent: float64(totals[label]) / float64(max) * 100,
		})
	}
	return out
}

// ComputeDailyTrend counts bookings per day over the trailing 7-day window
// ending at now. The result always has exactly 7 entries; days without
// bookings stay in with a zero count.
func ComputeDailyTrend(bookings []models.Booking, now time.Time) []ChartEntry {
	perDay := map[string]int{}
	for _, b := range bookings {
		perDay[utils.FormatDate(b.BookedAt)]++
	}

	out := make([]ChartEntry, 0, 7)
	max := 1
	for i := 6; i >= 0; i-- {
		day := utils.FormatDate(now.AddDate(0, 0, -i))
		if perDay[day] > max {
			max = perDay[day]
		}
		out = append(out, ChartEntry{Label: day, Count: perDay[day]})
	}
	for i := range out {
		out[i].Percent = float64(out[i].Count) / float64(max) * 100
	}
	return out
}

// ComputeLoyaltyDistribution buckets customers by tier. An empty customer
// map yields an empty slice rather than four zero bars.
func ComputeLoyaltyDistribution(stats []models.CustomerStat) []ChartEntry {
	if len(stats) == 0 {
		return []ChartEntry{}
	}

	tiers := []string{pricing.TierNew, pricing.TierRegular, pricing.TierLoyal, pricing.TierVIP}
	counts := map[string]int{}
	for _, s := range stats {
		counts[pricing.LoyaltyStatus(s.BookingCount)]++
	}

	total := len(stats)
	if total < 1 {
		total = 1
	}
	out := make([]ChartEntry, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, ChartEntry{
			Label:   tier,
			Count:   counts[tier],
			Percent: float64(counts[tier]) / float64(total) * 100,
		})
	}
	return out
}
