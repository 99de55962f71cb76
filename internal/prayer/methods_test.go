package prayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethods_NoDuplicateIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, m := range Methods {
		assert.False(t, seen[m.ID], "duplicate calculation method ID: %d", m.ID)
		seen[m.ID] = true
	}
}

func TestMethods_AnglesArePlausible(t *testing.T) {
	for _, m := range Methods {
		assert.NotEmpty(t, m.Name, "method %d", m.ID)
		assert.True(t, m.FajrAngle >= 10 && m.FajrAngle <= 21, "%s fajr angle %v", m.Name, m.FajrAngle)
		assert.True(t, m.IshaAngle >= 10 && m.IshaAngle <= 21, "%s isha angle %v", m.Name, m.IshaAngle)
	}
}

func TestMethodByID(t *testing.T) {
	m, ok := MethodByID(DefaultMethodID)
	assert.True(t, ok)
	assert.Equal(t, 18.0, m.FajrAngle)
	assert.Equal(t, 17.0, m.IshaAngle)

	_, ok = MethodByID(4)
	assert.False(t, ok, "Umm Al-Qura uses a fixed Isha interval")
}

func TestShadowFactor(t *testing.T) {
	assert.Equal(t, 1.0, ShadowFactor(0))
	assert.Equal(t, 2.0, ShadowFactor(1))
	assert.Equal(t, 1.0, ShadowFactor(-1))
}

func TestParseEvent(t *testing.T) {
	e, ok := ParseEvent("maghrib")
	assert.True(t, ok)
	assert.Equal(t, Maghrib, e)

	e, ok = ParseEvent("Dhuhr")
	assert.True(t, ok)
	assert.Equal(t, Zuhr, e)

	_, ok = ParseEvent("Witr")
	assert.False(t, ok)
}
