package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// BrochureData is everything the expedition brochure renders: the planner
// request that produced the plan plus the AI-suggested experiences.
type BrochureData struct {
	Mood            string
	Budget          string
	Duration        string
	Guests          int
	Preferences     string
	Recommendations []Recommendation
	CreatedAt       time.Time
}

// GenerateBrochurePDF renders a plan as a branded PDF and returns raw bytes
// (stored in PostgreSQL, no filesystem needed).
func GenerateBrochurePDF(data BrochureData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(26, 43, 71) // deep navy
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Elegant Tours", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(255, 108, 0) // brand orange
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Sundarbans Expedition Plan", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 244, 230)
	pdf.SetDrawColor(255, 108, 0)
	pdf.SetTextColor(150, 70, 0)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		"This is a suggested plan, not a booking confirmation. All pricing is provided on request by our concierge desk.",
		"", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(26, 43, 71)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Expedition Profile ────────────────────────────────────
	sectionHeader("Expedition Profile")
	row("Mood", data.Mood)
	row("Budget Tier", data.Budget)
	row("Duration", data.Duration)
	guests := data.Guests
	if guests <= 0 {
		guests = 1
	}
	row("Explorers", fmt.Sprintf("%d", guests))
	if data.Preferences != "" {
		row("Specific Needs", data.Preferences)
	}
	created := data.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	row("Generated", created.Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Suggested Experiences ─────────────────────────────────
	for i, rec := range data.Recommendations {
		sectionHeader(fmt.Sprintf("Experience %d: %s", i+1, rec.Destination))
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, rec.Reason, "", "L", false)
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(26, 43, 71)
		pdf.CellFormat(170, 6, "Suggested activities", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		for _, act := range rec.SuggestedActivities {
			pdf.MultiCell(170, 5, "- "+act, "", "L", false)
		}
		pdf.Ln(4)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Elegant Tours - Official Sundarbans Partner - Pricing on request - Not a booking confirmation",
		"", 0, "C", false, 0, "")

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
