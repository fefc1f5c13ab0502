package handlers

import (
	"context"
	"net/http"

	"eleganttours/services"

	"github.com/gin-gonic/gin"
)

// tourImages tracks per-tour generation jobs. Each id's status is independent:
// a slow or failed job for one tour never touches another's.
var tourImages = services.NewImageJobs()

type VisualizeRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type VisualizeResponse struct {
	Image string `json:"image,omitempty"`
}

// VisualizeHandler serves the "dream destination" visualizer: one synchronous
// generation per request. A missing image is a normal empty response.
func VisualizeHandler(c *gin.Context) {
	var req VisualizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	image := services.GetGemini().GenerateSceneImage(c.Request.Context(), req.Prompt)
	c.JSON(http.StatusOK, VisualizeResponse{Image: image})
}

// TourImageHandler kicks off an async image generation job for one catalog
// tour. Repeated calls while a job is in flight are deduplicated.
func TourImageHandler(c *gin.Context) {
	id := c.Param("id")
	tour, ok := services.FindTour(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown tour"})
		return
	}

	if !tourImages.Start(id) {
		c.JSON(http.StatusAccepted, tourImages.Get(id))
		return
	}

	go func(tour services.Tour) {
		// Detached from the request: the job outlives the HTTP call.
		scene := tour.Name + " in " + tour.Country + ". Mangrove forest, Royal Bengal Tiger, wildlife photography, luxury boat, photorealistic."
		image := services.GetGemini().GenerateSceneImage(context.Background(), scene)
		if image == "" {
			tourImages.Fail(tour.ID, "image generation unavailable")
			return
		}
		tourImages.Succeed(tour.ID, image)
	}(tour)

	c.JSON(http.StatusAccepted, tourImages.Get(id))
}

// TourImageStatusHandler reports the current job status for one tour id.
func TourImageStatusHandler(c *gin.Context) {
	id := c.Param("id")
	if _, ok := services.FindTour(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown tour"})
		return
	}
	c.JSON(http.StatusOK, tourImages.Get(id))
}
