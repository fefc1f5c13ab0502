package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"eleganttours/database"
	"eleganttours/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecommendResponse struct {
	PlanID          string                    `json:"plan_id,omitempty"`
	Recommendations []services.Recommendation `json:"recommendations"`
	BrochureURL     string                    `json:"brochure_url,omitempty"`
}

// RecommendHandler runs the AI planner: fetch schema-constrained suggestions,
// persist the plan and hand back a brochure link. An empty suggestion list is
// a normal response, not an error — the UI shows its neutral state.
func RecommendHandler(c *gin.Context) {
	var req services.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Guests <= 0 {
		req.Guests = 1
	}

	recs := services.GetGemini().FetchRecommendations(c.Request.Context(), req)
	if len(recs) == 0 {
		c.JSON(http.StatusOK, RecommendResponse{Recommendations: []services.Recommendation{}})
		return
	}

	resp := RecommendResponse{Recommendations: recs}

	// Persist the plan so the brochure can be rendered later. Losing the row
	// costs only the download link, not the suggestions.
	if database.DB != nil {
		recsJSON, _ := json.Marshal(recs)
		planID := uuid.New().String()
		plan := &database.Plan{
			ID:          planID,
			Mood:        req.Mood,
			Budget:      req.Budget,
			Duration:    req.Duration,
			Guests:      req.Guests,
			Preferences: req.Preferences,
			RecsJSON:    string(recsJSON),
		}
		if err := database.SavePlan(plan); err != nil {
			log.Printf("⚠️  Failed to save plan: %v — brochure will be unavailable", err)
		} else {
			resp.PlanID = planID
			resp.BrochureURL = "/api/brochure/" + planID
		}
	}

	c.JSON(http.StatusOK, resp)
}
