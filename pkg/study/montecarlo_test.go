package study_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomas-hruska/gmmlab/pkg/gmm"
	"github.com/tomas-hruska/gmmlab/pkg/simulate"
	"github.com/tomas-hruska/gmmlab/pkg/study"
)

func newTestDesign(t *testing.T, opts ...simulate.IVOption) *simulate.IVDesign {
	t.Helper()
	opts = append([]simulate.IVOption{simulate.WithSeed(21)}, opts...)
	design, err := simulate.NewIVDesign([]float64{1.0, 0.5}, 2, opts...)
	require.NoError(t, err)
	return design
}

func TestStudy_Validation(t *testing.T) {
	design := newTestDesign(t)

	_, err := study.NewStudy(design, 0, 10)
	assert.ErrorIs(t, err, study.ErrBadSampleSize)

	_, err = study.NewStudy(design, 100, 0)
	assert.ErrorIs(t, err, study.ErrBadReplications)
}

func TestStudy_Run(t *testing.T) {
	design := newTestDesign(t)

	st, err := study.NewStudy(design, 300, 25,
		study.WithSignificanceLevel(0.05),
		study.WithEstimationMethod(gmm.TwoStep),
	)
	require.NoError(t, err)

	report, err := st.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, st.ID(), report.RunID)
	assert.Equal(t, "linear-iv", report.Design)
	assert.Equal(t, "two-step", report.Method)
	assert.Equal(t, 25, len(report.Results)+report.Failures)

	require.Len(t, report.ThetaMean, 2)
	assert.InDelta(t, 1.0, report.ThetaMean[0], 0.5)
	assert.InDelta(t, 0.5, report.ThetaMean[1], 0.5)

	assert.GreaterOrEqual(t, report.RejectionRate, 0.0)
	assert.LessOrEqual(t, report.RejectionRate, 1.0)
	assert.GreaterOrEqual(t, report.MeanJ, 0.0)
}

func TestStudy_RunViolatedDesignRejects(t *testing.T) {
	design := newTestDesign(t, simulate.WithViolation(0.8))

	st, err := study.NewStudy(design, 500, 15)
	require.NoError(t, err)

	report, err := st.Run(context.Background())
	require.NoError(t, err)

	// A strongly violated moment condition should be rejected in the
	// bulk of replications.
	assert.Greater(t, report.RejectionRate, 0.5)
}

func TestStudy_RunCanceled(t *testing.T) {
	design := newTestDesign(t)

	st, err := study.NewStudy(design, 100, 10)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = st.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
