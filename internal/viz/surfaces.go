package viz

// Surfaces are the outputs of one update pass: the chart, the vessel and
// the status line. They are owned by the caller and redrawn in full on
// every pass.
type Surfaces struct {
	Chart  *Chart
	Vessel *Vessel
	Status string
}

func NewSurfaces(chartW, chartH, vesselW, vesselH int) *Surfaces {
	return &Surfaces{
		Chart:  NewChart(chartW, chartH),
		Vessel: NewVessel(vesselW, vesselH),
	}
}
