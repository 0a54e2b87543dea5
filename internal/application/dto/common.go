package dto

import "time"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ReportFilter filtro común de reportes y listados: rango de fechas y producto.
// Fechas en formato 2006-01-02; to_date es inclusivo del día calendario completo.
type ReportFilter struct {
	FromDate  string `query:"from_date"`
	ToDate    string `query:"to_date"`
	ProductID string `query:"product_id"`
}

// DateRange convierte el filtro a instantes: FromDate al inicio del día y
// ToDate al final del día (23:59:59.999999999), para que el rango sea inclusivo.
func (f ReportFilter) DateRange() (from, to *time.Time, err error) {
	if f.FromDate != "" {
		d, perr := ParseDate(f.FromDate)
		if perr != nil {
			return nil, nil, perr
		}
		from = &d
	}
	if f.ToDate != "" {
		d, perr := ParseDate(f.ToDate)
		if perr != nil {
			return nil, nil, perr
		}
		end := d.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	return from, to, nil
}

// ParseDate acepta 2006-01-02 o RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
