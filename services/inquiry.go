package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// Category identifies which surface on the site originated a lead.
type Category string

const (
	CategoryGeneral    Category = "General"
	CategoryItinerary  Category = "Itinerary"
	CategoryTour       Category = "Tour"
	CategoryNewsletter Category = "Newsletter"
)

// ParseCategory maps a free-form category string onto the closed set.
// Unknown values fall back to General.
func ParseCategory(s string) Category {
	switch Category(strings.TrimSpace(s)) {
	case CategoryItinerary:
		return CategoryItinerary
	case CategoryTour:
		return CategoryTour
	case CategoryNewsletter:
		return CategoryNewsletter
	default:
		return CategoryGeneral
	}
}

// Inquiry is a normalized lead, built once per submission and read-only after.
type Inquiry struct {
	Name     string
	Email    string
	Phone    string
	Category Category
	Details  string
}

// Validate checks the fields the relay refuses to run without.
// Everything else is the submitting surface's responsibility.
func (i Inquiry) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("inquiry name is required")
	}
	if strings.TrimSpace(i.Email) == "" {
		return fmt.Errorf("inquiry email is required")
	}
	return nil
}

// ─── Composer helpers ─────────────────────────────────────────────────────────

// ComposeBookingDetails joins the booking fields a tour or package form
// collects into the free-text details line the relay sends onward.
func ComposeBookingDetails(packageName, travelDate string, guests int, note string) string {
	parts := []string{}
	if packageName != "" {
		parts = append(parts, "Package: "+packageName)
	}
	if travelDate != "" {
		parts = append(parts, "Travel date: "+travelDate)
	}
	if guests > 0 {
		parts = append(parts, fmt.Sprintf("Guests: %d", guests))
	}
	if strings.TrimSpace(note) != "" {
		parts = append(parts, "Note: "+strings.TrimSpace(note))
	}
	if len(parts) == 0 {
		return "No additional details provided"
	}
	return strings.Join(parts, " | ")
}

// ComposeNewsletterInquiry builds the fixed-shape lead for a footer signup.
// The footer only collects an email, so the remaining fields are filled with
// the conventions the operations team expects.
func ComposeNewsletterInquiry(email string) Inquiry {
	return Inquiry{
		Name:     "Newsletter Subscriber",
		Email:    strings.TrimSpace(email),
		Phone:    "N/A",
		Category: CategoryNewsletter,
		Details:  "Newsletter signup from website footer",
	}
}

// ─── Relay ────────────────────────────────────────────────────────────────────

const enrichmentFallback = "(AI drafting unavailable — raw lead details below)"

const (
	enrichmentTimeout = 10 * time.Second
	deliveryTimeout   = 15 * time.Second
)

// Drafter produces a natural-language summary of a lead for the notification
// email. It is best-effort: any error degrades to a fallback marker.
type Drafter interface {
	DraftInquiryEmail(ctx context.Context, inq Inquiry) (string, error)
}

// Deliverer hands the lead notification to the third-party form relay.
type Deliverer interface {
	Deliver(ctx context.Context, req DeliveryRequest) error
}

// InquiryRelay runs the two-step lead pipeline: optional AI enrichment, then
// mandatory delivery. One delivery attempt per invocation, no retries.
type InquiryRelay struct {
	drafter   Drafter
	deliverer Deliverer
}

var inquiryRelay *InquiryRelay

func InitRelay() {
	inquiryRelay = NewInquiryRelay(GetGemini(), NewDeliveryClient())
	log.Println("✅ Inquiry relay initialized")
}

func GetRelay() *InquiryRelay {
	return inquiryRelay
}

func NewInquiryRelay(drafter Drafter, deliverer Deliverer) *InquiryRelay {
	return &InquiryRelay{drafter: drafter, deliverer: deliverer}
}

// Relay attempts to deliver an inquiry to the agency inbox.
//
// The returned bool is the caller-facing outcome: true only when the delivery
// collaborator accepted the notification. A delivery failure is logged with
// its cause and reported as false — we deliberately do not paper over lost
// leads with a success screen. The error return is non-nil only for a
// malformed inquiry, in which case no delivery is attempted.
func (r *InquiryRelay) Relay(ctx context.Context, inq Inquiry) (bool, error) {
	if err := inq.Validate(); err != nil {
		return false, err
	}

	// Step 1: best-effort enrichment. Never blocks delivery.
	enrichment := enrichmentFallback
	if r.drafter != nil {
		draftCtx, cancel := context.WithTimeout(ctx, enrichmentTimeout)
		draft, err := r.drafter.DraftInquiryEmail(draftCtx, inq)
		cancel()
		if err != nil {
			log.Printf("⚠️  AI enrichment failed for %s inquiry: %v — sending raw details", inq.Category, err)
		} else if strings.TrimSpace(draft) != "" {
			enrichment = draft
		}
	}

	// Step 2: mandatory delivery, single attempt.
	req := DeliveryRequest{
		Name:    inq.Name,
		Email:   inq.Email,
		Phone:   inq.Phone,
		Subject: fmt.Sprintf("New Inquiry - %s - %s", inq.Category, inq.Name),
		ReplyTo: inq.Email,
		Message: composeMessageBody(inq, enrichment),
	}

	delCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if err := r.deliverer.Deliver(delCtx, req); err != nil {
		log.Printf("❌ Lead delivery failed for %s <%s>: %v", inq.Name, inq.Email, err)
		return false, nil
	}

	log.Printf("✅ Lead delivered: %s inquiry from %s <%s>", inq.Category, inq.Name, inq.Email)
	return true, nil
}

func composeMessageBody(inq Inquiry, enrichment string) string {
	return fmt.Sprintf(`Category: %s
Name: %s
Email: %s
Phone: %s
Details: %s

--- Drafted summary ---
%s`, inq.Category, inq.Name, inq.Email, inq.Phone, inq.Details, enrichment)
}
