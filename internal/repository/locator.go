package repository

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ValetTech/Valet/internal/db"
)

// DefaultOrigin is downtown San Francisco, the fixed point new listings are placed around.
var DefaultOrigin = db.Location{Latitude: 37.7749, Longitude: -122.4194}

const DefaultSpread = 0.05

// JitterLocator stands in for geocoding: every call returns the origin shifted by a
// uniform offset in [-spread/2, spread/2) on each axis.
type JitterLocator struct {
	origin db.Location
	spread float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewJitterLocator seeds from the clock when seed is 0.
func NewJitterLocator(origin db.Location, spread float64, seed int64) *JitterLocator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &JitterLocator{
		origin: origin,
		spread: spread,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

func (l *JitterLocator) Locate() db.Location {
	l.mu.Lock()
	defer l.mu.Unlock()
	return db.Location{
		Latitude:  l.origin.Latitude + (l.rnd.Float64()-0.5)*l.spread,
		Longitude: l.origin.Longitude + (l.rnd.Float64()-0.5)*l.spread,
	}
}
