package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
)

// ErrNoRenderer el servicio no tiene generador de PDF configurado.
var ErrNoRenderer = errors.New("report: generador de PDF no configurado")

// SummaryDocument datos del resumen de indicadores en formato documento.
type SummaryDocument struct {
	EstablishmentName string
	Period            string // vacío = todo el histórico
	GeneratedAt       time.Time
	Info              dto.OrdersInfoResponse
}

// SummaryRenderer puerto de salida que renderiza el resumen (implementado en infrastructure/pdf).
type SummaryRenderer interface {
	GenerateSummaryPDF(ctx context.Context, doc SummaryDocument) ([]byte, error)
}

// WithRenderer configura el generador usado por SummaryPDF.
func (s *Service) WithRenderer(r SummaryRenderer) *Service {
	s.renderer = r
	return s
}

// SummaryPDF renderiza los indicadores de Info con el nombre del establecimiento y el período.
func (s *Service) SummaryPDF(ctx context.Context, establishmentID string, p *Period) ([]byte, error) {
	if s.renderer == nil {
		return nil, ErrNoRenderer
	}
	info, err := s.Info(ctx, establishmentID, p)
	if err != nil {
		return nil, err
	}
	est, err := s.store.Establishments.GetByID(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("get establishment: %w", err)
	}
	doc := SummaryDocument{GeneratedAt: time.Now().In(s.loc), Info: *info}
	if est != nil {
		doc.EstablishmentName = est.Name
	}
	if p != nil {
		doc.Period = p.From.In(s.loc).Format("02/01/2006") + " a " + p.To.In(s.loc).Format("02/01/2006")
	}
	return s.renderer.GenerateSummaryPDF(ctx, doc)
}
