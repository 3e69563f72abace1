package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yash-070702/Codash-next/internal/service"
)

type Server struct {
	mx              *chi.Mux
	activityService service.ActivityServiceI
}

type ServicesList struct {
	ActivityService service.ActivityServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		activityService: servicesOptions.ActivityService,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/healthz", s.Healthz)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/platform/{platform}/{handle}/activity", s.GetActivity)
		r.Get("/platform/{platform}/{handle}/heatmap", s.GetHeatmap)
	})
}

// Handler exposes the routed mux for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.Handler())
}
