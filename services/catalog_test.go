package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTour(t *testing.T) {
	tour, ok := FindTour("1")
	require.True(t, ok)
	assert.Equal(t, "Royal Bengal Tiger Safari", tour.Name)

	_, ok = FindTour("no-such-tour")
	assert.False(t, ok)
}

func TestCatalogNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Tours())
	assert.NotEmpty(t, Packages())
	for _, p := range Packages() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
	}
}
