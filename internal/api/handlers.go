package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yash-070702/Codash-next/internal/analytics"
	"github.com/yash-070702/Codash-next/internal/errvalues"
	"github.com/yash-070702/Codash-next/internal/service"
	"github.com/yash-070702/Codash-next/pkg/entity"
	"github.com/yash-070702/Codash-next/pkg/httputil"
)

type HeatmapResponse struct {
	Platform   string                    `json:"platform"`
	Handle     string                    `json:"handle"`
	Heatmap    []entity.DailyActivity    `json:"heatmap"`
	Statistics entity.CalendarStatistics `json:"statistics"`
}

func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	src := analytics.Source(chi.URLParam(r, "platform"))
	handle := chi.URLParam(r, "handle")
	year := parseYearParam(r)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	report, err := s.activityService.GetActivityReport(ctx, src, handle, service.ReportOpts{Year: year})
	if err != nil {
		writeActivityError(w, logger, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("activity report provided",
		slog.String("platform", string(src)),
		slog.String("handle", handle))
}

func (s *Server) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	src := analytics.Source(chi.URLParam(r, "platform"))
	handle := chi.URLParam(r, "handle")
	year := parseYearParam(r)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	report, err := s.activityService.GetActivityReport(ctx, src, handle, service.ReportOpts{Year: year})
	if err != nil {
		writeActivityError(w, logger, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HeatmapResponse{
		Platform:   string(src),
		Handle:     handle,
		Heatmap:    report.Heatmap,
		Statistics: report.Statistics,
	})
	logger.Info("heatmap provided",
		slog.String("platform", string(src)),
		slog.String("handle", handle))
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func parseYearParam(r *http.Request) int {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1970 || year > 9999 {
		return 0
	}
	return year
}

func writeActivityError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, errvalues.ErrUnsupportedPlatform):
		logger.Error("activity report error: unsupported platform")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unsupported platform", nil)
	case errors.Is(err, errvalues.ErrInvalidHandle):
		logger.Error("activity report error: invalid handle")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid platform handle", nil)
	case errors.Is(err, errvalues.ErrHandleNotFound):
		logger.Error("activity report error: handle not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "platform handle not found", nil)
	case errors.Is(err, errvalues.ErrUpstreamUnavailable):
		logger.Error("activity report error: upstream unavailable", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "platform is unavailable, try again later", nil)
	default:
		logger.Error("activity report error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building activity report", nil)
	}
}
