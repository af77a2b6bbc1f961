package responses

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/dvillegas/postres-backend/pkg/errors"
)

func TestHTMLRendersTemplate(t *testing.T) {
	tmpl := template.Must(template.New("saludo").Parse(`<p>Hola {{.Nombre}}</p>`))
	rn := NewRenderer(tmpl, nil)

	w := httptest.NewRecorder()
	rn.HTML(context.Background(), w, http.StatusOK, "saludo", map[string]string{"Nombre": "Ana"})

	if got := w.Code; got != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", got)
	}
	if got := w.Body.String(); got != "<p>Hola Ana</p>" {
		t.Fatalf("unexpected body %q", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestRedirectIsFound(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/guardar_compra", nil)
	Redirect(w, r, "/compra_realizada")

	if got := w.Code; got != http.StatusFound {
		t.Fatalf("expected status 302 but got %d", got)
	}
	if loc := w.Header().Get("Location"); loc != "/compra_realizada" {
		t.Fatalf("unexpected location %q", loc)
	}
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()
	WriteText(w, http.StatusOK, "OK")

	if got := w.Body.String(); got != "OK" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestWriteErrorMapsTypedError(t *testing.T) {
	w := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "bad input").
		WithDetails(map[string]string{"field": "cantidad"})
	WriteError(context.Background(), nil, w, err)

	if got := w.Code; got != http.StatusBadRequest {
		t.Fatalf("expected status 400 but got %d", got)
	}

	var body ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected code %s", body.Error.Code)
	}
	if body.Error.Details == nil {
		t.Fatalf("expected details in public payload")
	}
}

func TestWriteErrorDefaultsToInternalForUntrustedErrors(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), nil, w, errors.New("boom"))

	if got := w.Code; got != http.StatusInternalServerError {
		t.Fatalf("expected status 500 but got %d", got)
	}

	var body ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodeInternal) {
		t.Fatalf("unexpected code %s", body.Error.Code)
	}
	if body.Error.Details != nil {
		t.Fatalf("details should be omitted for internal errors")
	}
}

func TestErrorRendersHTMLPage(t *testing.T) {
	tmpl := template.Must(template.New("error.html").Parse(`<p class="error">{{.Mensaje}}</p>`))
	rn := NewRenderer(tmpl, nil)

	w := httptest.NewRecorder()
	rn.Error(context.Background(), nil, w, errors.New("boom"))

	if got := w.Code; got != http.StatusInternalServerError {
		t.Fatalf("expected status 500 but got %d", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if got := w.Body.String(); got != `<p class="error">Ocurrió un error. Inténtalo de nuevo más tarde.</p>` {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestErrorUsesTypedStatusAndMessage(t *testing.T) {
	tmpl := template.Must(template.New("error.html").Parse(`{{.Mensaje}}`))
	rn := NewRenderer(tmpl, nil)

	w := httptest.NewRecorder()
	rn.Error(context.Background(), nil, w, pkgerrors.New(pkgerrors.CodeNotFound, "missing row"))

	if got := w.Code; got != http.StatusNotFound {
		t.Fatalf("expected status 404 but got %d", got)
	}
	if got := w.Body.String(); got != "No se encontró lo solicitado." {
		t.Fatalf("unexpected body %q", got)
	}
}
