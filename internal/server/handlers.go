package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tagcloud/pkg/buildinfo"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/observability"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/render"
)

// CloudRequest is the body of POST /v1/clouds.
type CloudRequest struct {
	Text    string           `json:"text"`
	Options pipeline.Options `json:"options"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleCloud(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	var req CloudRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, string(errors.ErrCodeInvalidInput), "request body exceeds 1 MiB")
			return
		}
		writeError(w, http.StatusBadRequest, string(errors.ErrCodeInvalidInput), "malformed request: "+err.Error())
		return
	}

	opts := req.Options
	if opts.ExcludedWordsPath != "" {
		writeError(w, http.StatusBadRequest, string(errors.ErrCodeInvalidInput), "excluded_words_path is not accepted over HTTP, use excluded_words")
		return
	}
	if len(opts.Formats) > 1 {
		opts.Formats = opts.Formats[:1]
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	res, err := s.runner.Execute(ctx, req.Text, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	format := render.FormatSVG
	if len(opts.Formats) == 1 {
		format, _ = render.ParseFormat(opts.Formats[0])
	}
	w.Header().Set("X-Request-ID", res.ID)
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[string(format)])
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		s.logger.Warn("cloud timed out", "route", routePattern(r), "timeout", s.timeout)
		writeError(w, http.StatusGatewayTimeout, string(errors.ErrCodeTimeout), "cloud took longer than "+s.timeout.String())
		return
	case stderrors.Is(err, context.Canceled):
		s.logger.Debug("client went away", "route", routePattern(r))
		return
	}

	code := errors.GetCode(err)
	if errors.IsValidation(err) {
		writeError(w, http.StatusBadRequest, string(code), errors.UserMessage(err))
		return
	}
	s.logger.Error("cloud failed", "route", routePattern(r), "err", err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeError(w, http.StatusInternalServerError, string(code), errors.UserMessage(err))
}

// instrument logs every request and reports it to the server hooks.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routePattern(r)
		dur := time.Since(start)
		observability.Server().OnRequest(r.Context(), r.Method, route, status, dur)
		s.logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", dur)
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return r.URL.Path
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: msg})
}
