package httputil

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/alexedwards/scs/v2"

	"ggrecap/internal/model"
)

// Session keys shared between the renderer and the HTTP middleware.
const (
	SessionKeyCSRF      = "csrfToken"
	sessionKeyFlash     = "flash"
	sessionKeyFlashKind = "flashKind"
)

// Flash is a one-shot message surfaced on the next rendered page.
type Flash struct {
	Message string
	Kind    string // success, info, warning, danger
}

// SetFlash queues a message in the session; the next Render pops it.
func SetFlash(ctx context.Context, session *scs.SessionManager, kind, message string) {
	session.Put(ctx, sessionKeyFlash, message)
	session.Put(ctx, sessionKeyFlashKind, kind)
}

// Page is the envelope every template receives. Handler-specific data goes
// in Data.
type Page struct {
	CurrentUser *model.User
	Flash       *Flash
	CSRFToken   string
	Year        int
	Data        interface{}
}

// Renderer executes the parsed HTML templates with the shared page envelope.
type Renderer struct {
	templates *template.Template
	session   *scs.SessionManager
}

// NewRenderer parses every template under dir.
func NewRenderer(dir string, session *scs.SessionManager) (*Renderer, error) {
	tpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tpl, session: session}, nil
}

// Render executes the named template, wrapping data in the page envelope.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, user *model.User, data interface{}) {
	rd.render(w, r, http.StatusOK, name, user, data)
}

// NotFound renders the generic not-found page with a 404 status.
func (rd *Renderer) NotFound(w http.ResponseWriter, r *http.Request, user *model.User) {
	rd.render(w, r, http.StatusNotFound, "404.html", user, nil)
}

// SetFlash queues a message for the next rendered page.
func (rd *Renderer) SetFlash(ctx context.Context, kind, message string) {
	SetFlash(ctx, rd.session, kind, message)
}

func (rd *Renderer) render(w http.ResponseWriter, r *http.Request, status int, name string, user *model.User, data interface{}) {
	page := Page{
		CurrentUser: user,
		Flash:       rd.popFlash(r.Context()),
		CSRFToken:   rd.session.GetString(r.Context(), SessionKeyCSRF),
		Year:        time.Now().Year(),
		Data:        data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := rd.templates.ExecuteTemplate(w, name, page); err != nil {
		// Headers are already sent; all we can do is log.
		log.Printf("Error executing template %s: %v", name, err)
	}
}

func (rd *Renderer) popFlash(ctx context.Context) *Flash {
	message := rd.session.PopString(ctx, sessionKeyFlash)
	kind := rd.session.PopString(ctx, sessionKeyFlashKind)
	if message == "" {
		return nil
	}
	if kind == "" {
		kind = "info"
	}
	return &Flash{Message: message, Kind: kind}
}
