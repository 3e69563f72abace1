package platform

import (
	"context"
	"net/http"
	"time"

	"github.com/yash-070702/Codash-next/internal/analytics"
	"github.com/yash-070702/Codash-next/pkg/entity"
)

// RawActivity is the record set a fetch collaborator hands to the engine. The
// Records shape varies per platform (epoch-keyed calendar, per-day object
// calendar, or submission-event array); the normalizer erases that
// heterogeneity.
type RawActivity struct {
	Records     any
	Difficulty  entity.DifficultyCounts
	ActiveYears []int
	// Total problems the platform offers, when the API reports it.
	QuestionTotals *entity.QuestionTotals
}

type Fetcher interface {
	Source() analytics.Source
	// Fetches the full available activity history for a handle
	Fetch(ctx context.Context, handle string) (*RawActivity, error)
}

// YearFetcher is implemented by backends that expose per-year history, so the
// caller can fan out one fetch per active year and union the results.
type YearFetcher interface {
	Fetcher
	FetchYear(ctx context.Context, handle string, year int) (*RawActivity, error)
}

const defaultTimeout = 15 * time.Second

func defaultClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}
