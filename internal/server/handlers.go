package server

import (
	"errors"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	tarotsite "github.com/goliatone/go-tarotsite"
	"github.com/goliatone/go-tarotsite/pkg/enquiry"
	"github.com/goliatone/go-tarotsite/pkg/pages"
	"github.com/goliatone/go-tarotsite/pkg/render"
)

const (
	contactPath  = "contact.html"
	startParam   = "start"
	maxFormBytes = 64 << 10

	submitFailedMessage = "Your message could not be sent. Please try again or reach out on WhatsApp."
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(enquiry.Document())
}

// handleFile serves pages for .html, .md and extensionless names and falls
// back to the public directory for anything else.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	switch strings.ToLower(path.Ext(file)) {
	case "", ".html", ".md":
		s.handlePage(w, r)
	default:
		s.servePublic(w, r, file)
	}
}

func (s *Server) servePublic(w http.ResponseWriter, r *http.Request, file string) {
	if s.cfg.publicDir == "" || !fsValidName(file) {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, os.DirFS(s.cfg.publicDir), file)
}

func fsValidName(name string) bool {
	return name != "" && !strings.Contains(name, "..") && !strings.ContainsAny(name, `/\`)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, r.URL.Path, http.StatusOK, s.renderOptions(r))
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	e := enquiry.FromValues(r.PostForm)
	opts := s.renderOptions(r)
	opts.Values = e.Values()
	status := http.StatusOK

	err := s.cfg.validator.Validate(r.Context(), e)
	var verr *enquiry.ValidationError
	switch {
	case errors.As(err, &verr):
		mapping := render.MapErrorPayload(enquiry.FieldNames, verr.Fields)
		opts.Errors = mapping.Fields
		opts.FormErrors = mapping.Form
		status = http.StatusUnprocessableEntity
	case err != nil:
		s.cfg.logger.Error("validate enquiry", zap.Error(err))
		opts.FormErrors = render.MergeFormErrors(opts.FormErrors, submitFailedMessage)
		status = http.StatusInternalServerError
	default:
		if err := s.cfg.submitter.Submit(r.Context(), e); err != nil {
			s.cfg.logger.Error("submit enquiry", zap.Error(err))
			opts.FormErrors = render.MergeFormErrors(opts.FormErrors, submitFailedMessage)
			status = http.StatusBadGateway
			break
		}
		s.cfg.logger.Info("enquiry received", zap.String("email", e.Email))
		opts.Values = nil
		opts.Notice = enquiry.Acknowledgement
	}

	s.writePage(w, r, pages.Contact.Filename(), status, opts)
}

// renderOptions reads the carousel position from the query string. Any
// explicit start counts as visitor navigation.
func (s *Server) renderOptions(r *http.Request) render.RenderOptions {
	opts := render.RenderOptions{
		CarouselWindow: s.cfg.carouselWindow,
		AutoAdvance:    s.cfg.autoAdvance,
	}
	if raw := strings.TrimSpace(r.URL.Query().Get(startParam)); raw != "" {
		if start, err := strconv.Atoi(raw); err == nil {
			opts.CarouselStart = start
			opts.CarouselManual = true
		}
	}
	return opts
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, location string, status int, opts render.RenderOptions) {
	out, err := tarotsite.RenderLocation(r.Context(), s.registry, s.Site(), location, opts)
	if err != nil {
		s.cfg.logger.Error("render page", zap.String("location", location), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", out.ContentType)
	w.WriteHeader(status)
	_, _ = w.Write(out.Body)
}
