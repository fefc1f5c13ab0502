package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBrochurePDF(t *testing.T) {
	data := BrochureData{
		Mood:        "Wildlife Expedition",
		Budget:      "Premium",
		Duration:    "3 Days",
		Guests:      2,
		Preferences: "photography hides",
		Recommendations: []Recommendation{
			{
				Destination:         "Sudhanyakhali Tiger Reserve",
				Reason:              "Highest sighting frequency in the core area.",
				SuggestedActivities: []string{"Dawn boat safari", "Watchtower session"},
			},
			{
				Destination:         "Dobanki Canopy Walk",
				Reason:              "Elevated views over the mangrove crown.",
				SuggestedActivities: []string{"Canopy walk", "Bird watching"},
			},
		},
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	pdfBytes, err := GenerateBrochurePDF(data)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF-", string(pdfBytes[:5]), "output must be a PDF document")
}

func TestGenerateBrochurePDF_NoRecommendations(t *testing.T) {
	pdfBytes, err := GenerateBrochurePDF(BrochureData{
		Mood:     "Village Culture",
		Budget:   "Standard",
		Duration: "2 Days",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
