package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yash-070702/Codash-next/internal/analytics"
	"github.com/yash-070702/Codash-next/internal/errvalues"
	"github.com/yash-070702/Codash-next/internal/platform"
	"github.com/yash-070702/Codash-next/pkg/entity"
)

const defaultYearFanout = 4

// ActivityService gathers raw records from the platform fetchers and runs the
// analytics pipeline. It holds no per-request state; repeated calls with
// identical upstream data produce identical reports.
type ActivityService struct {
	fetchers map[analytics.Source]platform.Fetcher
	fanout   int
}

func NewActivityService(fanout int, fetchers ...platform.Fetcher) *ActivityService {
	if len(fetchers) == 0 {
		log.Fatal("provided no platform fetchers")
	}
	if fanout < 1 {
		fanout = defaultYearFanout
	}
	bySource := make(map[analytics.Source]platform.Fetcher, len(fetchers))
	for _, f := range fetchers {
		bySource[f.Source()] = f
	}
	return &ActivityService{
		fetchers: bySource,
		fanout:   fanout,
	}
}

func (as *ActivityService) GetActivityReport(ctx context.Context, src analytics.Source, handle string, opts ReportOpts) (*entity.ActivityReport, error) {
	if err := ValidateHandle(handle); err != nil {
		return nil, errvalues.ErrInvalidHandle
	}
	if !analytics.KnownSource(src) {
		return nil, errvalues.ErrUnsupportedPlatform
	}
	// A known platform can still be unsupported in this deployment.
	fetcher, ok := as.fetchers[src]
	if !ok {
		return nil, errvalues.ErrUnsupportedPlatform
	}

	raw, err := fetcher.Fetch(ctx, handle)
	if err != nil {
		if errors.Is(err, errvalues.ErrHandleNotFound) || errors.Is(err, errvalues.ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, errors.New("platform fetcher error: " + err.Error())
	}

	counts := analytics.Normalize(src, raw.Records)
	if yearFetcher, ok := fetcher.(platform.YearFetcher); ok {
		counts = as.mergeHistory(ctx, yearFetcher, src, handle, counts, raw.ActiveYears)
	}

	report := analytics.BuildReport(counts, raw.Difficulty, analytics.ReportOptions{Year: opts.Year})
	report.QuestionTotals = raw.QuestionTotals
	return &report, nil
}

// mergeHistory fans out one fetch per active year, bounded by the configured
// concurrency. A failed year is logged and omitted; the merge is a date-key
// union that favors already-known data over late fetches.
func (as *ActivityService) mergeHistory(ctx context.Context, fetcher platform.YearFetcher, src analytics.Source, handle string, counts map[string]int, years []int) map[string]int {
	if len(years) == 0 {
		return counts
	}
	logger := slog.Default()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(as.fanout)
	for _, year := range years {
		year := year
		g.Go(func() error {
			raw, err := fetcher.FetchYear(gctx, handle, year)
			if err != nil {
				logger.Warn("skipping year of history",
					slog.String("platform", string(src)),
					slog.Int("year", year),
					slog.String("error", err.Error()))
				return nil
			}
			yearCounts := analytics.Normalize(src, raw.Records)
			mu.Lock()
			for date, count := range yearCounts {
				if _, known := counts[date]; !known {
					counts[date] = count
				}
			}
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; failed years are simply absent.
	g.Wait()
	return counts
}
