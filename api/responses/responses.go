package responses

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"

	pkgerrors "github.com/dvillegas/postres-backend/pkg/errors"
	"github.com/dvillegas/postres-backend/pkg/logger"
)

// APIError is the public error shape for the JSON endpoints.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// Renderer executes the server-side HTML views.
type Renderer struct {
	tmpl *template.Template
	logg *logger.Logger
}

// NewRenderer builds a Renderer over a parsed template set.
func NewRenderer(tmpl *template.Template, logg *logger.Logger) *Renderer {
	return &Renderer{tmpl: tmpl, logg: logg}
}

// HTML renders the named template. Render failures after headers are sent
// cannot be recovered, so they are logged and the body is left truncated.
func (rn *Renderer) HTML(ctx context.Context, w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := rn.tmpl.ExecuteTemplate(w, name, data); err != nil {
		if rn.logg != nil {
			rn.logg.Error(rn.logg.WithField(ctx, "template", name), "render.error", err)
		} else {
			log.Printf(`{"level":"error","msg":"failed to render template","template":%q,"err":"%v"}`, name, err)
		}
	}
}

// Error logs err with its full chain and answers with the standalone HTML
// error page. The browser-facing routes use this; JSON endpoints keep
// WriteError.
func (rn *Renderer) Error(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())

	logError(ctx, logg, err)

	rn.HTML(ctx, w, meta.HTTPStatus, "error.html", map[string]any{
		"Mensaje": mensajePara(typed.Code()),
	})
}

func mensajePara(code pkgerrors.Code) string {
	switch code {
	case pkgerrors.CodeValidation:
		return "Los datos enviados no son válidos."
	case pkgerrors.CodeNotFound:
		return "No se encontró lo solicitado."
	default:
		return "Ocurrió un error. Inténtalo de nuevo más tarde."
	}
}

// Redirect issues a 302 to the given path.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusFound)
}

// WriteText writes a plain-text body.
func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Printf(`{"level":"error","msg":"failed to write response","err":"%v"}`, err)
	}
}

// WriteJSON writes the payload as JSON.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// WriteError logs err with its full chain and answers with the JSON error
// envelope for the matching status.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := ErrorEnvelope{
		Error: APIError{
			Code:    string(typed.Code()),
			Message: msg,
		},
	}

	if meta.DetailsAllowed {
		if details := typed.Details(); details != nil {
			payload.Error.Details = details
		}
	}

	logError(ctx, logg, err)

	WriteJSON(w, meta.HTTPStatus, payload)
}

func logError(ctx context.Context, logg *logger.Logger, err error) {
	if logg == nil {
		return
	}

	dump := pkgerrors.Dump(err)

	ctx = logg.WithFields(ctx, map[string]any{
		"error":         dump.TopMessage,
		"error_code":    dump.Code,
		"error_chain":   dump.Chain,
		"pg_code":       dump.PGCode,
		"pg_detail":     dump.PGDetail,
		"pg_message":    dump.PGMessage,
		"pg_table":      dump.PGTable,
		"pg_column":     dump.PGColumn,
		"pg_constraint": dump.PGConstraint,
	})
	logg.Error(ctx, "request.error", err)
}
