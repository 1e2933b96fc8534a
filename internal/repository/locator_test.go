package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJitterLocator_StaysWithinSpread(t *testing.T) {
	l := NewJitterLocator(DefaultOrigin, DefaultSpread, 42)
	for i := 0; i < 200; i++ {
		loc := l.Locate()
		assert.InDelta(t, DefaultOrigin.Latitude, loc.Latitude, DefaultSpread/2)
		assert.InDelta(t, DefaultOrigin.Longitude, loc.Longitude, DefaultSpread/2)
	}
}

func TestJitterLocator_SeedIsDeterministic(t *testing.T) {
	a := NewJitterLocator(DefaultOrigin, DefaultSpread, 7)
	b := NewJitterLocator(DefaultOrigin, DefaultSpread, 7)
	assert.Equal(t, a.Locate(), b.Locate())
}
