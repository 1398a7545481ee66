// Package timeline builds the availability index that lets clients jump to
// any date carrying published transmissions.
package timeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/singleflight"

	"verse-report/internal/observability/metrics"
	"verse-report/internal/repository"
)

// Index is the availability index over publish dates. Days are bucketed by
// calendar year and zero-based month in the display timezone.
type Index struct {
	// Years holds every year with at least one published transmission,
	// newest first.
	Years []int
	// Days maps year -> month (0-11) -> sorted days of month.
	Days map[int]map[int][]int
}

// Has reports whether the given calendar day carries any transmission.
func (ix *Index) Has(year, month, day int) bool {
	for _, d := range ix.Days[year][month] {
		if d == day {
			return true
		}
	}
	return false
}

// LatestDay returns the most recent available (month, day) of a year,
// scanning backwards from December. ok is false when the year is empty.
func (ix *Index) LatestDay(year int) (month, day int, ok bool) {
	months := ix.Days[year]
	for m := 11; m >= 0; m-- {
		days := months[m]
		if len(days) > 0 {
			return m, days[len(days)-1], true
		}
	}
	return 0, 0, false
}

// Service builds availability indexes from publish timestamps.
type Service struct {
	Repo repository.TransmissionRepository

	// Loc is the display timezone dates are bucketed in. It must match the
	// zone used by year filters or clients jump to off-by-one days.
	Loc *time.Location

	group singleflight.Group
}

// BuildIndex computes the index from the current set of publish dates.
// Concurrent calls are collapsed into a single repository scan; the index
// is otherwise recomputed per request so it never serves stale days.
func (s *Service) BuildIndex(ctx context.Context) (*Index, error) {
	// The build is shared by every collapsed caller, so it must not inherit
	// the first caller's cancellation.
	buildCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do("index", func() (any, error) {
		return s.build(buildCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Index), nil
}

func (s *Service) build(ctx context.Context) (*Index, error) {
	start := time.Now()
	defer func() { metrics.RecordTimelineIndexBuild(time.Since(start)) }()

	dates, err := s.Repo.ListPublishDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list publish dates: %w", err)
	}

	loc := s.Loc
	if loc == nil {
		loc = time.UTC
	}

	ix := &Index{Days: map[int]map[int][]int{}}
	seen := map[[3]int]bool{}
	for _, ts := range dates {
		local := ts.In(loc)
		year, month, day := local.Year(), int(local.Month())-1, local.Day()
		key := [3]int{year, month, day}
		if seen[key] {
			continue
		}
		seen[key] = true

		if ix.Days[year] == nil {
			ix.Days[year] = map[int][]int{}
			ix.Years = append(ix.Years, year)
		}
		ix.Days[year][month] = append(ix.Days[year][month], day)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ix.Years)))
	for _, months := range ix.Days {
		for m := range months {
			sort.Ints(months[m])
		}
	}
	return ix, nil
}
