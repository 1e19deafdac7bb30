package sim

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/solsim/internal/solubility"
	"github.com/san-kum/solsim/internal/viz"
)

// StatusDissolved is shown when no solute precipitates.
const StatusDissolved = "fully dissolved"

// Pipeline recomputes the model and redraws every surface from scratch.
// It holds only immutable settings; all inputs arrive with each call.
type Pipeline struct {
	table       *solubility.Table
	scale       float64
	speckleSeed int64
	log         *slog.Logger
}

type Option func(*Pipeline)

// WithPrecipitateScale sets the precipitate layer height per 100 g.
func WithPrecipitateScale(scale float64) Option {
	return func(p *Pipeline) { p.scale = scale }
}

// WithSpeckleSeed fixes the precipitate texture.
func WithSpeckleSeed(seed int64) Option {
	return func(p *Pipeline) { p.speckleSeed = seed }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

func New(table *solubility.Table, opts ...Option) *Pipeline {
	p := &Pipeline{
		table:       table,
		scale:       30,
		speckleSeed: 7,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Table returns the substance table the pipeline evaluates against.
func (p *Pipeline) Table() *solubility.Table { return p.table }

// Evaluate parses in and runs the model without touching any surface.
func (p *Pipeline) Evaluate(in Inputs) (solubility.Result, solubility.Substance, error) {
	state, err := in.Parse()
	if err != nil {
		return solubility.Result{}, solubility.Substance{}, err
	}
	res, err := p.table.Evaluate(state)
	if err != nil {
		return solubility.Result{}, solubility.Substance{}, err
	}
	sub, err := p.table.Lookup(res.State.Substance)
	if err != nil {
		return solubility.Result{}, solubility.Substance{}, err
	}
	return res, sub, nil
}

// Update runs one full pass: evaluate, redraw chart, redraw vessel, set
// status. On error the surfaces are left exactly as they were.
func (p *Pipeline) Update(in Inputs, s *viz.Surfaces) (solubility.Result, error) {
	res, sub, err := p.Evaluate(in)
	if err != nil {
		p.log.Debug("update rejected", "inputs", in, "error", err)
		return solubility.Result{}, err
	}

	st := res.State
	s.Chart.Draw(fmt.Sprintf("%s · %s", sub.Key, sub.Name), sub.Curve, st.Temperature, res.Relative())
	s.Vessel.Draw(st.Solvent, res.Precipitate, sub.Tint, p.scale, p.speckleSeed)
	s.Status = StatusText(res)

	p.log.Debug("update",
		"substance", st.Substance,
		"temp", st.Temperature,
		"water", st.Solvent,
		"solute", st.Solute,
		"max", res.MaxDissolvable,
		"precipitate", res.Precipitate,
	)
	return res, nil
}

// StatusText describes the outcome of a pass.
func StatusText(res solubility.Result) string {
	if res.Precipitate > 0 {
		return fmt.Sprintf("%.1fg precipitated (%s)", res.Precipitate, res.Saturation)
	}
	return StatusDissolved
}
