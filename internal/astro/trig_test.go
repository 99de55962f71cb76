package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestDegreeTrig(t *testing.T) {
	assert.InDelta(t, 0.5, SinDeg(30), eps)
	assert.InDelta(t, 0.5, CosDeg(60), eps)
	assert.InDelta(t, 1.0, TanDeg(45), eps)
	assert.InDelta(t, 90.0, AcosDeg(0), eps)
	assert.InDelta(t, 180.0, AcosDeg(-1), eps)
	assert.InDelta(t, 0.0, AcosDeg(1), eps)
}

func TestAcotDeg(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{1, 45},
		{0, 90},
		{2, 26.56505117707799},
		{-1, 135},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, AcotDeg(tt.x), eps, "AcotDeg(%v)", tt.x)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1.2, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
}
