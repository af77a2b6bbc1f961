package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/dvillegas/postres-backend/pkg/errors"
)

// ParseParamInt64 reads a numeric chi path parameter.
func ParseParamInt64(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
