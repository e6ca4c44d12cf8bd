package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/screenfit/pkg/buildinfo"
	"github.com/matzehuels/screenfit/pkg/cache"
	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/observability"
	"github.com/matzehuels/screenfit/pkg/profile"
)

const shutdownTimeout = 5 * time.Second

// serveOptions holds configuration for the serve command.
type serveOptions struct {
	profile profileFlags
	addr    string
	noCache bool
}

// serveCommand creates the serve command exposing the preview HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOptions{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve adaptation results and previews over HTTP",
		Long: `Serve a profile's adaptation over HTTP.

Endpoints:
  GET /healthz                  liveness and build info
  GET /fit?w=&h=                adaptation snapshot as JSON
  GET /preview.svg?w=&h=        SVG preview
  GET /preview.png?w=&h=&scale= PNG preview`,
		Example: `  screenfit serve -p examples/profiles/phone.toml --addr :9090
  curl 'localhost:9090/fit?w=1334&h=750'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	opts.profile.bind(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOptions) error {
	p, err := opts.profile.load(cmd)
	if err != nil {
		return err
	}
	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	h, err := newServer(c.Logger, p, store)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           h.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	}
}

// =============================================================================
// Handlers
// =============================================================================

// server answers preview requests for one profile.
type server struct {
	logger      *log.Logger
	profile     *profile.Profile
	profileHash string
	cache       cache.Cache
}

func newServer(logger *log.Logger, p *profile.Profile, c cache.Cache) (*server, error) {
	hash, err := cache.HashJSON(p)
	if err != nil {
		return nil, err
	}
	return &server{logger: logger, profile: p, profileHash: hash, cache: c}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Get("/fit", s.handlePreview(formatJSON))
	r.Get("/preview.svg", s.handlePreview(formatSVG))
	r.Get("/preview.png", s.handlePreview(formatPNG))
	return r
}

// observe logs each request and reports it to the HTTP hooks.
func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, d)
		s.logger.Debugf("%s %s %d (%s)", r.Method, r.URL.RequestURI(), status, d.Round(time.Microsecond))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"profile": s.profile.Name,
		"build":   buildinfo.Get(),
	})
}

var contentTypes = map[string]string{
	formatJSON: "application/json",
	formatSVG:  "image/svg+xml",
	formatPNG:  "image/png",
}

func (s *server) handlePreview(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		width, height, err := queryViewport(q.Get("w"), q.Get("h"))
		if err != nil {
			writeError(w, err)
			return
		}
		scale := 1.0
		if format == formatPNG && q.Get("scale") != "" {
			if scale, err = strconv.ParseFloat(q.Get("scale"), 64); err != nil {
				writeError(w, errors.New(errors.ErrCodeInvalidArgument, "invalid scale %q", q.Get("scale")))
				return
			}
		}

		name := fmt.Sprintf("%gx%g", width, height)
		e, err := evaluate(s.logger, s.profile, name, width, height)
		if err != nil {
			writeError(w, err)
			return
		}
		data, cached, err := renderPreview(r.Context(), s.cache, s.profileHash, format, scale, e)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("X-Cache", cacheStatus(cached))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// queryViewport parses the w and h query parameters.
func queryViewport(ws, hs string) (float64, float64, error) {
	if ws == "" || hs == "" {
		return 0, 0, errors.New(errors.ErrCodeInvalidViewport, "query parameters w and h are required")
	}
	return parseSize(ws + "x" + hs)
}

func cacheStatus(cached bool) string {
	if cached {
		return "HIT"
	}
	return "MISS"
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error to the HTTP status it is reported with.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidScaleMode, errors.ErrCodeInvalidScreenMode,
		errors.ErrCodeInvalidDesignSize, errors.ErrCodeInvalidViewport, errors.ErrCodeInvalidArgument,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(err), errorBody{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
