package api

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/segaxis/pkg/buildinfo"
	"github.com/matzehuels/segaxis/pkg/errors"
	"github.com/matzehuels/segaxis/pkg/layout"
	"github.com/matzehuels/segaxis/pkg/pipeline"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

// DefaultTimeout bounds a single pipeline run.
const DefaultTimeout = 30 * time.Second

// Content types per output format.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

type server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New returns the API handler backed by runner. A nil logger falls back
// to the runner's logger.
func New(runner *pipeline.Runner, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = runner.Logger
	}
	s := &server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(middleware.Timeout(DefaultTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render/{format}", s.handleRender)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeErrorStatus(w, r, http.StatusMethodNotAllowed,
			errors.New(errors.ErrCodeInvalidInput, "method %s not allowed", r.Method))
	})
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Logger = s.loggerFor(r.Context())

	l, hit, err := s.runner.LayoutWithCacheInfo(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := layout.Marshal(l)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}
	w.Header().Set("X-Cache", cacheHeader(hit))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := errors.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	filename := r.URL.Query().Get("filename")
	if filename != "" {
		if err := errors.ValidatePath(filename); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	opts, err := decodeOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}
	opts.Logger = s.loggerFor(r.Context())

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheHeader(res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit))
	w.Header().Set("Content-Type", contentTypes[format])
	if filename != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(filename)}))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// =============================================================================
// Helpers
// =============================================================================

func decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		if err == io.EOF {
			return opts, errors.New(errors.ErrCodeInvalidInput, "request body is empty")
		}
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return opts, nil
}

func (s *server) loggerFor(ctx context.Context) *log.Logger {
	if id := RequestIDFrom(ctx); id != "" {
		return s.logger.With("request_id", id)
	}
	return s.logger
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
