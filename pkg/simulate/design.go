package simulate

import "github.com/tomas-hruska/gmmlab/pkg/gmm"

// Draw simulates a fresh sample and wraps it in its moment conditions.
func (d *IVDesign) Draw(n int) (gmm.Moments, error) {
	s, err := d.Simulate(n)
	if err != nil {
		return nil, err
	}
	return s.Moments()
}

func (d *IVDesign) Name() string {
	if d.violation != 0 {
		return "linear-iv/violated"
	}
	return "linear-iv"
}

// Draw simulates a fresh sample and wraps it in its moment conditions.
func (d *WageDesign) Draw(n int) (gmm.Moments, error) {
	s, err := d.Simulate(n)
	if err != nil {
		return nil, err
	}
	return s.Moments()
}

func (d *WageDesign) Name() string {
	return "wage-exponential"
}
