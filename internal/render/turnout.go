package render

import (
	"context"
	"errors"
	"time"

	"fireDispatch/internal/domain"
)

const (
	turnoutTemplate    = "turnout_slip.html"
	turnoutContentType = "text/html; charset=utf-8"
)

// TurnoutGenerator renders the dispatch document handed to responding crews.
type TurnoutGenerator struct {
	r   *Renderer
	now func() time.Time
}

func NewTurnoutGenerator(r *Renderer) *TurnoutGenerator {
	return &TurnoutGenerator{r: r, now: func() time.Time { return time.Now().UTC() }}
}

type turnoutView struct {
	domain.TurnoutContext
	GeneratedAt time.Time
}

func (g *TurnoutGenerator) Generate(ctx context.Context, tc domain.TurnoutContext) (*domain.TurnoutSlip, error) {
	if tc.Incident == nil || tc.Alert == nil {
		return nil, errors.New("turnout slip: incident and alert are required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	at := g.now()
	doc, err := g.r.RenderBytes(turnoutTemplate, turnoutView{TurnoutContext: tc, GeneratedAt: at})
	if err != nil {
		return nil, err
	}

	return &domain.TurnoutSlip{
		ContentType: turnoutContentType,
		Document:    doc,
		GeneratedAt: at,
	}, nil
}
