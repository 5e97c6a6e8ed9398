package report

import (
	"bufio"
	"io"
	"strings"
)

// Table reporte tabular: encabezados con las etiquetas y filas en el mismo orden.
type Table struct {
	Header []string
	Rows   [][]string
	// Numeric índices de columnas con conteos: sus celdas van sin comillas.
	Numeric map[int]bool
}

// WriteCSV escribe el encabezado y las filas con las celdas de texto entre comillas
// (comillas internas duplicadas) y fin de línea "\n". El encabezado siempre va citado.
func (t Table) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := writeRecord(bw, t.Header, nil); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := writeRecord(bw, r, t.Numeric); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// CSV atajo de WriteCSV a string.
func (t Table) CSV() string {
	var sb strings.Builder
	_ = t.WriteCSV(&sb)
	return sb.String()
}

func writeRecord(w *bufio.Writer, rec []string, numeric map[int]bool) error {
	for i, cell := range rec {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if numeric[i] && cell != "" {
			if _, err := w.WriteString(cell); err != nil {
				return err
			}
			continue
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(cell, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
