package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"eleganttours/database"
	"eleganttours/services"

	"github.com/gin-gonic/gin"
)

// BrochureHandler serves the expedition plan PDF. The brochure is rendered on
// first download and cached in the plan row.
func BrochureHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing plan ID"})
		return
	}

	plan, err := database.GetPlan(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	pdfData := plan.PDFData
	if len(pdfData) == 0 {
		var recs []services.Recommendation
		if err := json.Unmarshal([]byte(plan.RecsJSON), &recs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse stored plan"})
			return
		}

		pdfData, err = services.GenerateBrochurePDF(services.BrochureData{
			Mood:            plan.Mood,
			Budget:          plan.Budget,
			Duration:        plan.Duration,
			Guests:          plan.Guests,
			Preferences:     plan.Preferences,
			Recommendations: recs,
			CreatedAt:       plan.CreatedAt,
		})
		if err != nil {
			log.Printf("❌ Brochure generation failed for plan %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate brochure"})
			return
		}

		if err := database.UpdatePlanPDF(id, pdfData); err != nil {
			log.Printf("⚠️  Failed to cache brochure for plan %s: %v", id, err)
		}
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=elegant-tours-expedition.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfData)
}

// ToursHandler returns the static tour catalog.
func ToursHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tours": services.Tours()})
}

// PackagesHandler returns the static package catalog.
func PackagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": services.Packages()})
}

func HealthHandler(c *gin.Context) {
	db := database.DB
	dbStatus := "ok"
	if db == nil {
		dbStatus = "not initialized"
	} else if err := db.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "Elegant Tours API",
		"database": dbStatus,
	})
}
