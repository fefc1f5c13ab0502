package handlers

import (
	"log"
	"net/http"
	"strings"

	"eleganttours/database"
	"eleganttours/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InquiryRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Category   string `json:"category"`
	Package    string `json:"package"`
	TravelDate string `json:"travel_date"`
	Guests     int    `json:"guests"`
	Message    string `json:"message"`
}

type InquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// InquiryHandler serves every lead-capture surface: the contact modal, tour
// booking cards and the AI planner's follow-up form. The surface-specific
// fields are composed into one normalized inquiry before the relay runs.
func InquiryHandler(c *gin.Context) {
	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = "N/A"
	}

	inq := services.Inquiry{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    phone,
		Category: services.ParseCategory(req.Category),
		Details:  services.ComposeBookingDetails(req.Package, req.TravelDate, req.Guests, req.Message),
	}

	relayInquiry(c, inq)
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// NewsletterHandler handles the footer signup form, which only collects an
// email address.
func NewsletterHandler(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	relayInquiry(c, services.ComposeNewsletterInquiry(req.Email))
}

func relayInquiry(c *gin.Context, inq services.Inquiry) {
	delivered, err := services.GetRelay().Relay(c.Request.Context(), inq)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry: " + err.Error()})
		return
	}

	// Audit trail only — a failed insert never changes the relay outcome.
	if database.DB != nil {
		lead := &database.Lead{
			ID:        uuid.New().String(),
			Name:      inq.Name,
			Email:     inq.Email,
			Phone:     inq.Phone,
			Category:  string(inq.Category),
			Details:   inq.Details,
			Delivered: delivered,
		}
		if dbErr := database.SaveLead(lead); dbErr != nil {
			log.Printf("⚠️  Failed to record lead %s <%s>: %v", inq.Name, inq.Email, dbErr)
		}
	}

	if !delivered {
		c.JSON(http.StatusBadGateway, InquiryResponse{
			Success: false,
			Message: "We could not deliver your inquiry right now. Please try again or call the concierge desk.",
		})
		return
	}

	c.JSON(http.StatusOK, InquiryResponse{
		Success: true,
		Message: "Inquiry received — a specialized naturalist will contact you shortly.",
	})
}
