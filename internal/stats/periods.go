package stats

import (
	"sort"
	"time"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

// SeriesLabel is the month bucket format for the monthly and cumulative
// series (the group engine uses the long form).
const SeriesLabel = "Jan 2006"

// PeriodCounts holds independent trailing-window counts. The windows
// overlap: a win in the last 7 days is also counted in the 30- and 90-day
// windows. The UI labels them as independent windows, so they are not
// partitioned into exclusive buckets.
type PeriodCounts struct {
	Total      int
	Last7Days  int
	Last30Days int
	Last90Days int
}

// TimeSeriesPoint is one month bucket of the trailing series.
type TimeSeriesPoint struct {
	Month string
	Count int
}

// CumulativePoint is one month of the cumulative trend. Cumulative is the
// running total after that month, monotonically non-decreasing.
type CumulativePoint struct {
	Month      string
	Count      int
	Cumulative int
}

// Periods counts wins inside the inclusive trailing windows ending at now.
func Periods(active []store.Win, now time.Time) PeriodCounts {
	d7 := now.AddDate(0, 0, -7)
	d30 := now.AddDate(0, 0, -30)
	d90 := now.AddDate(0, 0, -90)

	p := PeriodCounts{Total: len(active)}
	for _, w := range active {
		if w.Date.After(now) {
			continue
		}
		if !w.Date.Before(d7) {
			p.Last7Days++
		}
		if !w.Date.Before(d30) {
			p.Last30Days++
		}
		if !w.Date.Before(d90) {
			p.Last90Days++
		}
	}
	return p
}

// Monthly buckets wins into exactly 7 trailing calendar months (current
// month back 6), pre-seeded to zero so quiet months still appear. Buckets
// are anchored to the first of each month so the labels are stable
// regardless of the day of month now falls on. Output is chronological,
// oldest first.
func Monthly(active []store.Win, now time.Time) []TimeSeriesPoint {
	if len(active) == 0 {
		return nil
	}

	// Seed newest-first, reverse before returning.
	points := make([]TimeSeriesPoint, 0, 7)
	index := make(map[string]int, 7)
	for i := 0; i <= 6; i++ {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		label := month.Format(SeriesLabel)
		index[label] = len(points)
		points = append(points, TimeSeriesPoint{Month: label})
	}

	for _, w := range active {
		if i, ok := index[w.Date.Format(SeriesLabel)]; ok {
			points[i].Count++
		}
	}

	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}

// Cumulative orders wins chronologically and emits one point per distinct
// month with that month's count and the running total after it. The final
// cumulative value equals the number of active wins.
func Cumulative(active []store.Win) []CumulativePoint {
	if len(active) == 0 {
		return nil
	}

	sorted := make([]store.Win, len(active))
	copy(sorted, active)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var points []CumulativePoint
	index := make(map[string]int)
	total := 0
	for _, w := range sorted {
		label := w.Date.Format(SeriesLabel)
		i, ok := index[label]
		if !ok {
			i = len(points)
			index[label] = i
			points = append(points, CumulativePoint{Month: label})
		}
		total++
		points[i].Count++
		points[i].Cumulative = total
	}
	return points
}
