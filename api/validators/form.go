package validators

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/dvillegas/postres-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// DecodeForm populates dest (a struct pointer) from the request's form
// values using `form` struct tags, then runs the struct validators. Supported
// field types are string, int, int64, decimal.Decimal and *time.Time (dates
// as YYYY-MM-DD, empty meaning nil).
func DecodeForm(r *http.Request, dest any) error {
	if err := r.ParseForm(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body")
	}

	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return pkgerrors.New(pkgerrors.CodeInternal, "form destination must be a struct pointer")
	}
	v = v.Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if tag == "" || tag == "-" {
			continue
		}
		raw := strings.TrimSpace(r.FormValue(tag))

		if err := setFormField(v.Field(i), raw); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form value").
				WithDetails(map[string]any{"field": tag})
		}
	}

	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func setFormField(target reflect.Value, raw string) error {
	switch target.Interface().(type) {
	case decimal.Decimal:
		if raw == "" {
			return nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(d))
		return nil
	case *time.Time:
		if raw == "" {
			return nil
		}
		ts, err := time.Parse(dateLayout, raw)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(&ts))
		return nil
	}

	switch target.Kind() {
	case reflect.String:
		target.SetString(raw)
	case reflect.Int, reflect.Int64:
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		target.SetInt(n)
	}
	return nil
}
