package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/imbecility/media-gateway/pkg/gateway"
	"github.com/imbecility/media-gateway/pkg/models"
	"github.com/imbecility/media-gateway/pkg/platforms"
	"github.com/imbecility/media-gateway/pkg/upstream"
	"github.com/imbecility/media-gateway/pkg/utils"
)

const (
	msgMissingURL       = "Falta el parámetro 'url'."
	msgInternal         = "Error interno del servidor."
	msgMethodNotAllowed = "Método no permitido."
	msgRouteNotFound    = "Ruta no encontrada."

	// Day first, zero-padded, 24-hour clock.
	timestampLayout = "02/01/2006, 15:04:05"
)

var indexTmpl = template.Must(template.New("index").Parse(tmpl))

type Server struct {
	Port    int
	Gateway *gateway.Service
	Version string
	// Location is the zone of the consultado_en timestamp (defaults to UTC).
	Location *time.Location
	// Now is the clock used for consultado_en (defaults to time.Now).
	Now func() time.Time
}

func (s *Server) Start(enableWeb bool) error {
	addr := fmt.Sprintf(":%d", s.Port)
	fullAddr := fmt.Sprintf("http://localhost:%d", s.Port)
	slog.Info("Starting API server", "addr", fullAddr, "web_ui", enableWeb)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(enableWeb),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// Handler returns the complete route table wrapped in the CORS middleware.
func (s *Server) Handler(enableWeb bool) http.Handler {
	mux := http.NewServeMux()
	register(s, mux, platforms.YouTubeAudio)
	register(s, mux, platforms.YouTubeVideo)
	register(s, mux, platforms.TikTok)
	register(s, mux, platforms.Facebook)

	mux.HandleFunc("/{$}", s.handleIndex)
	mux.HandleFunc("/openapi.json", s.handleOpenAPIJSON)
	mux.HandleFunc("/openapi.yaml", s.handleOpenAPIYAML)
	if enableWeb {
		mux.HandleFunc("/web", s.handleWebIndex)
	}
	mux.HandleFunc("/", s.handleNotFound)

	return withCORS(mux)
}

func register[T models.Payload, R any](s *Server, mux *http.ServeMux, p platforms.Platform[T, R]) {
	mux.HandleFunc("/api/"+p.Name, proxyHandler(s, p))
}

func proxyHandler[T models.Payload, R any](s *Server, p platforms.Platform[T, R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.respondJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{Message: msgMethodNotAllowed})
			return
		}

		sourceURL := r.URL.Query().Get("url")
		log := slog.With("request_id", utils.NewRequestID(), "platform", p.Name)
		if strings.HasPrefix(p.Name, "yt") {
			if vid := utils.ExtractVideoID(sourceURL); vid != "" {
				log = log.With("vid", vid)
			}
		}
		log.Info("API request received", "remote", r.RemoteAddr)

		// The upstream call outlives a disconnected caller.
		ctx := context.WithoutCancel(r.Context())
		res, err := gateway.Resolve(ctx, s.Gateway, p, models.DownloadRequest{Platform: p.Name, SourceURL: sourceURL})
		if err != nil {
			status, msg := statusFor(err)
			if status == http.StatusInternalServerError {
				log.Error("Processing failed", "err", err)
			} else {
				log.Warn("Request rejected", "status", status, "err", err)
			}
			s.respondJSON(w, status, models.ErrorResponse{Message: msg})
			return
		}

		s.respondJSON(w, http.StatusOK, models.Response[R]{
			Platform:  p.Label,
			Fields:    res,
			QueriedAt: s.timestamp(),
			Message:   p.Success,
		})
	}
}

// statusFor maps a pipeline error to its HTTP status and public message.
// Unexpected errors never expose their text.
func statusFor(err error) (int, string) {
	if errors.Is(err, upstream.ErrMissingURL) {
		return http.StatusBadRequest, msgMissingURL
	}

	var failure *upstream.FailureError
	if errors.As(err, &failure) {
		return http.StatusNotFound, failure.Message
	}

	return http.StatusInternalServerError, msgInternal
}

func (s *Server) timestamp() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc).Format(timestampLayout)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Unknown route", "path", r.URL.Path, "remote", r.RemoteAddr)
	s.respondJSON(w, http.StatusNotFound, models.ErrorResponse{Message: msgRouteNotFound})
}

func (s *Server) handleWebIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTmpl.Execute(w, platforms.Routes())
	if err != nil {
		slog.Error("Template execution failed", "error", err, "remote", r.RemoteAddr)
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if jerr := enc.Encode(data); jerr != nil {
		slog.Error("JSON encoding failed", "error", jerr)
		status = http.StatusInternalServerError
		buf.Reset()
		_ = enc.Encode(models.ErrorResponse{Message: msgInternal})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, werr := w.Write(buf.Bytes()); werr != nil {
		slog.Warn("Failed to write response", "err", werr)
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
