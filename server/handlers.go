package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxUploadSize caps upload request bodies at 2GB.
const DefaultMaxUploadSize = 2 << 30

// Server serves the videoframenode companion endpoints.
type Server struct {
	store         *Store
	metrics       *metrics
	maxUploadSize int64
}

// New creates a Server over the given store.
func New(store *Store) *Server {
	return &Server{
		store:         store,
		metrics:       newMetrics(),
		maxUploadSize: DefaultMaxUploadSize,
	}
}

// SetMaxUploadSize overrides the upload body cap.
func (s *Server) SetMaxUploadSize(n int64) {
	s.maxUploadSize = n
}

// Routes returns the router for the companion endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/videoframenode/upload", s.handleUpload)
	r.Get("/videoframenode/recent", s.handleRecent)
	r.Get("/videoframenode/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// cap the body before parsing
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.metrics.uploadFailures.Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data: " + err.Error()})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.metrics.uploadFailures.Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing file"})
		return
	}
	defer file.Close()

	name, err := s.store.SaveVideo(header.Filename, file)
	if err != nil {
		s.metrics.uploadFailures.Inc()
		if errors.Is(err, ErrNotVideo) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "only .mp4 supported"})
			return
		}
		slog.Error("saving upload", "file", header.Filename, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "upload failed"})
		return
	}

	s.metrics.uploads.Inc()
	s.metrics.uploadBytes.Add(float64(header.Size))
	slog.Info("video uploaded", "name", name, "size", header.Size)
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	s.metrics.recentRequests.Inc()
	files, err := s.store.Recent(DefaultRecentLimit)
	if err != nil {
		// degrade to an empty list, never an error status
		slog.Warn("listing recent videos", "error", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"files": []string{}, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"files": files})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response", "error", err)
	}
}
