package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afm-analyzer/internal/correction"
	"afm-analyzer/pkg/heightmap"
)

func correctedFixture(t *testing.T) correction.Result {
	t.Helper()
	m, err := heightmap.FromRows([][]float64{
		{0, 1, 2, 3},
		{1, 2, 3, 4},
		{2, 3, 4, 5},
	})
	require.NoError(t, err)

	pipe, err := correction.NewPipeline(correction.Config{Plane: correction.PlaneOn})
	require.NoError(t, err)
	res, err := pipe.Run(m)
	require.NoError(t, err)
	return res
}

var testGeometry = heightmap.Geometry{ScanningRate: 4, ImageLength: 1, HeightScale: 2}

func TestRunRejectsIncompleteCorrection(t *testing.T) {
	pipe, err := NewPipeline(Config{Distribution: DistributionOn, Roughness: Roughness1D})
	require.NoError(t, err)

	_, err = pipe.Run(correction.Result{}, testGeometry)
	var seqErr *SequenceError
	require.ErrorAs(t, err, &seqErr)
}

func TestRunFullAnalysis(t *testing.T) {
	pipe, err := NewPipeline(Config{Distribution: DistributionOn, Roughness: Roughness1D})
	require.NoError(t, err)
	assert.Equal(t, []string{"height distribution", "1d roughness"}, pipe.Stages())

	rep, err := pipe.Run(correctedFixture(t), testGeometry)
	require.NoError(t, err)

	require.Len(t, rep.Heights, 12)
	require.NotNil(t, rep.Roughness)
	assert.Equal(t, Roughness1D, rep.Roughness.Mode)
	// The fixture is a perfect plane, so every row is flat after correction.
	assert.InDelta(t, 0, rep.Roughness.RoughnessNM, 1e-9)
}

func TestRunAppliesHeightScale(t *testing.T) {
	m, err := heightmap.FromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	pipe, err := correction.NewPipeline(correction.Config{})
	require.NoError(t, err)
	res, err := pipe.Run(m)
	require.NoError(t, err)

	anPipe, err := NewPipeline(Config{Distribution: DistributionOn})
	require.NoError(t, err)
	rep, err := anPipe.Run(res, heightmap.Geometry{ScanningRate: 2, ImageLength: 1, HeightScale: 3})
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 3, 3, 3}, rep.Heights)
}

func TestRunRoughness2D(t *testing.T) {
	pipe, err := NewPipeline(Config{Roughness: Roughness2D})
	require.NoError(t, err)

	rep, err := pipe.Run(correctedFixture(t), testGeometry)
	require.NoError(t, err)

	assert.Nil(t, rep.Heights)
	require.NotNil(t, rep.Roughness)
	assert.Equal(t, Roughness2D, rep.Roughness.Mode)
	assert.InDelta(t, 0, rep.Roughness.RoughnessNM, 1e-9)
	assert.Equal(t, 0.0, rep.Roughness.StdNM)
}

func TestRunEverythingDisabled(t *testing.T) {
	pipe, err := NewPipeline(Config{})
	require.NoError(t, err)
	assert.Empty(t, pipe.Stages())

	rep, err := pipe.Run(correctedFixture(t), testGeometry)
	require.NoError(t, err)
	assert.Nil(t, rep.Heights)
	assert.Nil(t, rep.Roughness)
}

func TestNewPipelineRejectsUnknownModes(t *testing.T) {
	_, err := NewPipeline(Config{Distribution: DistributionMode(9)})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "height_values_distribution", cfgErr.Key)

	_, err = NewPipeline(Config{Roughness: RoughnessMode(9)})
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "roughness", cfgErr.Key)
}

func TestParseModes(t *testing.T) {
	dist, err := ParseDistributionMode("Yes")
	require.NoError(t, err)
	assert.Equal(t, DistributionOn, dist)

	rough, err := ParseRoughnessMode("2D")
	require.NoError(t, err)
	assert.Equal(t, Roughness2D, rough)

	_, err = ParseRoughnessMode("3d")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("ParseRoughnessMode error = %v, want ConfigError", err)
	}
	assert.Equal(t, "3d", cfgErr.Value)
}
