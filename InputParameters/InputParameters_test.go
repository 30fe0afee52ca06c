package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := `
Title: "Heated bar"
Model: Galerkin
Nodes: 40
Length: 3.14159
Conductivity: 2.5
Source: x
Rule: Adaptive
Integrand: bump
XLeft: 0
XRight: 2
Tolerance: 1.0e-5
MaxRefinements: 12
`
	var ip InputParameters1D
	require.NoError(t, ip.Parse([]byte(data)))
	assert.Equal(t, "Heated bar", ip.Title)
	assert.Equal(t, "Galerkin", ip.Model)
	assert.Equal(t, 40, ip.Nodes)
	assert.InDelta(t, 2.5, ip.Conductivity, 1.e-14)
	assert.Equal(t, "Adaptive", ip.Rule)
	assert.InDelta(t, 1.e-5, ip.Tolerance, 1.e-18)
	assert.Equal(t, 12, ip.MaxRefinements)
}

func TestParseRejectsGarbage(t *testing.T) {
	var ip InputParameters1D
	assert.Error(t, ip.Parse([]byte("Nodes: [not, an, int]")))
}
