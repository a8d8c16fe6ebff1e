package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/config"
	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/pipeline"
)

// RegisterRoutes mounts the API on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", s.HandleHealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layouts", s.HandleCreateLayout)
		r.Get("/layouts/{id}", s.HandleGetLayout)
		r.Get("/box-types", s.HandleBoxTypes)
		r.Get("/edge-styles", s.HandleEdgeStyles)
		r.Get("/formats", s.HandleFormats)
	})
}

// HandleHealthCheck confirms the server is responsive.
func (s *Server) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleCreateLayout generates a layout from a JSON parameter document.
func (s *Server) HandleCreateLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r.URL.Query())
	if err != nil {
		s.respondWithError(w, err)
		return
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	var f config.File
	if err := dec.Decode(&f); err != nil {
		s.respondWithError(w, &errors.Error{
			Code:    errors.ErrCodeInvalidInput,
			Message: "invalid request body: " + err.Error(),
			Cause:   err,
		})
		return
	}
	p, err := f.Params()
	if err != nil {
		s.respondWithError(w, err)
		return
	}

	l, err := s.runner.Generate(r.Context(), p)
	if err != nil {
		s.respondWithError(w, err)
		return
	}
	s.respondWithLayout(w, r, l, opts)
}

// HandleGetLayout rebuilds a layout generated earlier from its ID.
func (s *Server) HandleGetLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r.URL.Query())
	if err != nil {
		s.respondWithError(w, err)
		return
	}
	l, err := s.runner.Lookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondWithError(w, err)
		return
	}
	s.respondWithLayout(w, r, l, opts)
}

// HandleBoxTypes lists the registered box types.
func (s *Server) HandleBoxTypes(w http.ResponseWriter, r *http.Request) {
	s.respondWithSuccess(w, http.StatusOK, s.runner.Factory.Types())
}

// HandleEdgeStyles lists the registered edge styles.
func (s *Server) HandleEdgeStyles(w http.ResponseWriter, r *http.Request) {
	s.respondWithSuccess(w, http.StatusOK, s.runner.Factory.Edges().Names())
}

// HandleFormats lists the supported output formats.
func (s *Server) HandleFormats(w http.ResponseWriter, r *http.Request) {
	s.respondWithSuccess(w, http.StatusOK, pipeline.Formats())
}

// respondWithLayout writes the rendered artifact when a format was requested
// and the layout description otherwise.
func (s *Server) respondWithLayout(w http.ResponseWriter, r *http.Request, l *box.Layout, opts *pipeline.Options) {
	w.Header().Set("X-Layout-ID", l.ID.String())
	w.Header().Set("Location", "/api/v1/layouts/"+l.ID.String())
	if opts == nil {
		s.respondWithSuccess(w, http.StatusOK, newLayoutResponse(l))
		return
	}

	artifacts, err := s.runner.Render(r.Context(), l, *opts)
	if err != nil {
		s.respondWithError(w, err)
		return
	}
	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("Content-Disposition", `inline; filename="`+l.ID.String()+pipeline.FormatExtensions[format]+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifacts[format]); err != nil {
		s.logger.Debug("write artifact", "error", err)
	}
}

// renderOptions reads render options from the query. It returns nil when no
// format was requested.
func renderOptions(q url.Values) (*pipeline.Options, error) {
	format := q.Get("format")
	if format == "" {
		return nil, nil
	}
	opts := &pipeline.Options{
		Formats: []string{format},
		Stroke:  q.Get("stroke"),
	}

	var err error
	if opts.StrokeWidth, err = floatParam(q, "stroke_width"); err != nil {
		return nil, err
	}
	if opts.Scale, err = floatParam(q, "scale"); err != nil {
		return nil, err
	}
	if opts.Labels, err = boolParam(q, "labels"); err != nil {
		return nil, err
	}
	if opts.Unitless, err = boolParam(q, "unitless"); err != nil {
		return nil, err
	}
	opts.Refresh, err = boolParam(q, "refresh")
	if err != nil {
		return nil, err
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return opts, nil
}

func floatParam(q url.Values, name string) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, badParam(name, v, err)
	}
	return f, nil
}

func boolParam(q url.Values, name string) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badParam(name, v, err)
	}
	return b, nil
}

func badParam(name, value string, cause error) error {
	return &errors.Error{
		Code:    errors.ErrCodeInvalidInput,
		Message: "invalid " + name + " " + strconv.Quote(value),
		Field:   name,
		Cause:   cause,
	}
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidDimension, errors.ErrCodeConfiguration:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnknownBoxType, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError sends a JSON error envelope. Errors without a code are
// reported as internal and their details are only logged.
func (s *Server) respondWithError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)

	body := &ErrorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
		Field:   errors.FieldOf(err),
		Panels:  errors.PanelsOf(err),
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
		body.Message = "internal error"
		body.Field, body.Panels = "", nil
	}
	if body.Field != "" {
		body.Message = strings.TrimPrefix(body.Message, body.Field+": ")
	}
	s.respondWithStatus(w, status, Response{Status: "error", Error: body})
}

// respondWithSuccess sends a JSON success envelope.
func (s *Server) respondWithSuccess(w http.ResponseWriter, status int, data any) {
	s.respondWithStatus(w, status, Response{Status: "success", Data: data})
}

func (s *Server) respondWithStatus(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
