package service

import (
	"context"

	"github.com/yash-070702/Codash-next/internal/analytics"
	"github.com/yash-070702/Codash-next/pkg/entity"
)

// ReportOpts scope a report request. Year 0 means the full activity span.
type ReportOpts struct {
	Year int
}

type ActivityServiceI interface {
	// Fetches raw records for the handle on the given platform, reconciles
	// multi-year history and computes the full activity report
	GetActivityReport(ctx context.Context, src analytics.Source, handle string, opts ReportOpts) (*entity.ActivityReport, error)
}
