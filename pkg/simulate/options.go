package simulate

import "golang.org/x/exp/rand"

type IVOption func(*IVDesign)

// WithEndogeneity sets the correlation between the structural and
// first-stage errors.
func WithEndogeneity(rho float64) IVOption {
	return func(d *IVDesign) {
		d.endogeneity = rho
	}
}

// WithViolation loads the last instrument into the structural error,
// breaking E[z*eps] = 0. Zero restores a valid design.
func WithViolation(delta float64) IVOption {
	return func(d *IVDesign) {
		d.violation = delta
	}
}

// WithInstrumentStrength scales the first-stage loading shared by the
// external instruments.
func WithInstrumentStrength(pi float64) IVOption {
	return func(d *IVDesign) {
		if pi > 0 {
			d.strength = pi
		}
	}
}

func WithSeed(seed uint64) IVOption {
	return func(d *IVDesign) {
		d.src = rand.NewSource(seed)
	}
}

func WithSource(src rand.Source) IVOption {
	return func(d *IVDesign) {
		if src != nil {
			d.src = src
		}
	}
}

type WageOption func(*WageDesign)

// WithWageNoise sets the standard deviation of the additive wage error.
func WithWageNoise(sigma float64) WageOption {
	return func(d *WageDesign) {
		if sigma > 0 {
			d.noiseSigma = sigma
		}
	}
}

// WithProxyNoise sets the standard deviation of the price-proxy noise.
func WithProxyNoise(sigma float64) WageOption {
	return func(d *WageDesign) {
		if sigma > 0 {
			d.proxySigma = sigma
		}
	}
}

func WithWageSeed(seed uint64) WageOption {
	return func(d *WageDesign) {
		d.src = rand.NewSource(seed)
	}
}

func WithWageSource(src rand.Source) WageOption {
	return func(d *WageDesign) {
		if src != nil {
			d.src = src
		}
	}
}
