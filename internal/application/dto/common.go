package dto

// ErrorResponse cuerpo de error HTTP. Errors lleva el detalle por campo en errores de validación.
type ErrorResponse struct {
	Error   bool                `json:"error"`
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// OptionResponse opción de un combo (listas del frontend).
type OptionResponse struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// DateRange rango de fechas YYYY-MM-DD; end_date ≥ start_date y no posterior a hoy.
type DateRange struct {
	StartDate string `json:"start_date" validate:"required,isodate"`
	EndDate   string `json:"end_date" validate:"required,isodate,notfuture"`
}

// IsZero indica si no se informó ninguna fecha.
func (r DateRange) IsZero() bool {
	return r.StartDate == "" && r.EndDate == ""
}

// ImportRequest entrada de los endpoints *FromFile. Category es opcional.
type ImportRequest struct {
	StartDate string `json:"start_date" validate:"required,isodate"`
	EndDate   string `json:"end_date" validate:"required,isodate,notfuture"`
	Category  string `json:"category,omitempty" validate:"omitempty,category"`
}

// Range devuelve el rango de fechas de la importación.
func (r ImportRequest) Range() DateRange {
	return DateRange{StartDate: r.StartDate, EndDate: r.EndDate}
}

// ImportSummary resultado de una importación.
type ImportSummary struct {
	File       string `json:"file"`
	Rows       int    `json:"rows"`
	Inserted   int    `json:"inserted"`
	Updated    int    `json:"updated"`
	Unchanged  int    `json:"unchanged"`
	Duplicates int    `json:"duplicates"`
	Skipped    int    `json:"skipped"`
}

// ImportResponse respuesta de importación.
type ImportResponse struct {
	Message string        `json:"message"`
	Summary ImportSummary `json:"summary"`
}
