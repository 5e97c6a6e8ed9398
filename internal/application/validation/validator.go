// Package validation aplica las reglas declarativas de los DTOs y devuelve
// los errores por campo con mensajes estilo validatorjs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
)

// DateLayout formato de fecha aceptado en filtros e importaciones.
const DateLayout = "2006-01-02"

// Categories valores aceptados por la regla "category".
var Categories = []string{"Customer", "Product", "Sale"}

// Result resultado de una validación. Errors mapea campo (ruta con puntos) → mensajes.
type Result struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Validator envuelve validator.Validate con las reglas propias de la API.
type Validator struct {
	v   *validator.Validate
	loc *time.Location
	now func() time.Time
}

// New registra las reglas "category", "isodate", "notfuture" y el orden de rangos de fecha.
// loc es la zona horaria en la que se calcula "hoy"; nil usa UTC.
func New(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), loc: loc, now: time.Now}

	val.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = val.v.RegisterValidation("category", isCategory)
	_ = val.v.RegisterValidation("isodate", isISODate)
	_ = val.v.RegisterValidation("notfuture", val.notAfterToday)
	val.v.RegisterStructValidation(rangeOrder, dto.DateRange{}, dto.ImportRequest{})
	return val
}

// WithClock reemplaza el reloj usado por "notfuture" (tests).
func (val *Validator) WithClock(now func() time.Time) *Validator {
	val.now = now
	return val
}

// Struct valida s y traduce los errores. Un error que no sea de validación se reporta bajo "_".
func (val *Validator) Struct(s any) Result {
	err := val.v.Struct(s)
	if err == nil {
		return Result{Success: true}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Errors: map[string][]string{"_": {err.Error()}}}
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		key := fieldKey(fe.Namespace())
		out[key] = append(out[key], message(fe, key))
	}
	return Result{Errors: out}
}

// fieldKey quita el nombre del struct raíz: "SignUpRequest.phone.area_code" → "phone.area_code".
func fieldKey(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// attribute nombre legible del campo: "_" y "[" pasan a espacio, "]" se elimina.
func attribute(key string) string {
	r := strings.NewReplacer("_", " ", "[", " ", "]", "")
	return r.Replace(key)
}

func message(fe validator.FieldError, key string) string {
	attr := attribute(key)
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attr)
	case "email":
		return fmt.Sprintf("The %s format is invalid.", attr)
	case "len":
		if isString {
			return fmt.Sprintf("The %s must be %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s must be %s.", attr, fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("The %s must be at least %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", attr, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("The %s may not be greater than %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", attr, fe.Param())
	case "isodate":
		return fmt.Sprintf("The %s is not a valid date format.", attr)
	case "after_or_equal":
		return fmt.Sprintf("The %s must be equal or after %s.", attr, fe.Param())
	case "category":
		return fmt.Sprintf("The informed %s is not a valid option [%s]", attr, strings.Join(Categories, ", "))
	case "notfuture":
		return fmt.Sprintf("The informed %s can't be after today's date", attr)
	default:
		return fmt.Sprintf("The %s is invalid.", attr)
	}
}

func isCategory(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	for _, c := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// notAfterToday acepta fechas hasta hoy 23:59:59 en la zona configurada.
func (val *Validator) notAfterToday(fl validator.FieldLevel) bool {
	d, err := time.ParseInLocation(DateLayout, fl.Field().String(), val.loc)
	if err != nil {
		// el formato lo reporta "isodate"
		return true
	}
	now := val.now().In(val.loc)
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, val.loc)
	return !d.After(endOfToday)
}

// rangeOrder exige end_date ≥ start_date cuando ambas fechas son válidas.
func rangeOrder(sl validator.StructLevel) {
	var start, end string
	switch r := sl.Current().Interface().(type) {
	case dto.DateRange:
		start, end = r.StartDate, r.EndDate
	case dto.ImportRequest:
		start, end = r.StartDate, r.EndDate
	default:
		return
	}
	s, err1 := time.Parse(DateLayout, start)
	e, err2 := time.Parse(DateLayout, end)
	if err1 != nil || err2 != nil {
		return
	}
	if e.Before(s) {
		sl.ReportError(end, "end_date", "EndDate", "after_or_equal", "start_date")
	}
}

// ParseRange convierte un rango validado en [inicio 00:00:00, fin 23:59:59] en loc.
func ParseRange(r dto.DateRange, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	from, err := time.ParseInLocation(DateLayout, r.StartDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date: %w", err)
	}
	to, err := time.ParseInLocation(DateLayout, r.EndDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date: %w", err)
	}
	return from, to.Add(24*time.Hour - time.Second), nil
}
