package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Vancouver Art Gallery to Science World, roughly 2.3 km.
	d := HaversineDistance(49.2829, -123.1207, 49.2734, -123.1034)
	assert.InDelta(t, 2300, d, 300)
}

func TestHaversineDistanceZero(t *testing.T) {
	assert.InDelta(t, 0, HaversineDistance(49.2829, -123.1207, 49.2829, -123.1207), 0.001)
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := HaversineDistance(49.2829, -123.1207, 43.6532, -79.3832)
	b := HaversineDistance(43.6532, -79.3832, 49.2829, -123.1207)
	assert.InDelta(t, a, b, 0.001)
}
