package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// agencySystemInstruction pins the model to the agency's operating region and
// keeps pricing out of generated copy (pricing is quoted on request only).
const agencySystemInstruction = `You are the Lead Tour Expert for "Elegant Tours", specializing EXCLUSIVELY in the Sundarbans Mangrove Forest.
Your agency's expertise focuses on:
1. Royal Bengal Tiger expeditions and mangrove boat stays.
2. Eco-tourism and village immersion tours in the Sundarbans region.
3. Logistics for groups visiting watchtowers like Sajnekhali, Sudhanyakhali, and Dobanki.

CRITICAL INSTRUCTION:
When a user asks for recommendations, you MUST focus on specific locations within the Sundarbans.
- Suggest watchtowers for wildlife sightings.
- Suggest private houseboats or eco-resorts.
- Tailor activities to the specified guest count and duration (typically 2-4 days).
- DO NOT mention specific prices or estimated costs. All pricing is provided on request.`

// RecommendationRequest carries the planner form fields.
type RecommendationRequest struct {
	Mood        string `json:"mood" binding:"required"`
	Budget      string `json:"budget" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	Guests      int    `json:"guests"`
	Preferences string `json:"preferences"`
}

// Recommendation is one suggested Sundarbans experience.
type Recommendation struct {
	Destination         string   `json:"destination"`
	Reason              string   `json:"reason"`
	SuggestedActivities []string `json:"suggestedActivities"`
}

type GeminiClient struct {
	client     *genai.Client
	model      string
	imageModel string
}

var geminiClient *GeminiClient

func InitGemini() {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	imageModel := os.Getenv("GEMINI_IMAGE_MODEL")
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image"
	}

	geminiClient = &GeminiClient{model: model, imageModel: imageModel}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set — AI drafting, recommendations and images will use fallbacks")
		return
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("⚠️  Gemini client init failed: %v — AI features will use fallbacks", err)
		return
	}
	geminiClient.client = client
	log.Println("✅ AI (Gemini) initialized with model:", model)
}

func GetGemini() *GeminiClient {
	return geminiClient
}

// ─── Inquiry drafting ─────────────────────────────────────────────────────────

// DraftInquiryEmail asks the model for a short operations-team summary of a
// lead. Callers treat any error as "no enrichment available".
func (c *GeminiClient) DraftInquiryEmail(ctx context.Context, inq Inquiry) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("gemini api key not configured")
	}

	prompt := fmt.Sprintf(`Draft a professional email body summarizing this inquiry for the operations team:
Type: %s
From: %s (%s)
Phone: %s
Details: %s

Keep it under 120 words, plain text, no subject line.`,
		inq.Category, inq.Name, inq.Email, inq.Phone, inq.Details)

	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(agencySystemInstruction))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}

// ─── Recommendations ──────────────────────────────────────────────────────────

const recommendationTimeout = 20 * time.Second

// FetchRecommendations returns 3 suggested expeditions for the planner form.
// Any failure — missing credential, network error, schema drift, bad JSON —
// yields an empty slice; the caller never sees a transport error.
func (c *GeminiClient) FetchRecommendations(ctx context.Context, req RecommendationRequest) []Recommendation {
	if c == nil || c.client == nil {
		log.Println("⚠️  Recommendation fetch skipped: gemini not configured")
		return []Recommendation{}
	}

	ctx, cancel := context.WithTimeout(ctx, recommendationTimeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(agencySystemInstruction))
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"destination":         {Type: genai.TypeString, Description: "Area in Sundarbans"},
				"reason":              {Type: genai.TypeString},
				"suggestedActivities": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"destination", "reason", "suggestedActivities"},
		},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(buildRecommendationPrompt(req)))
	if err != nil {
		log.Printf("⚠️  Recommendation fetch failed: %v — returning no suggestions", err)
		return []Recommendation{}
	}

	recs, err := parseRecommendations([]byte(responseText(resp)))
	if err != nil {
		log.Printf("⚠️  Recommendation response unparseable: %v — returning no suggestions", err)
		return []Recommendation{}
	}
	return recs
}

func buildRecommendationPrompt(req RecommendationRequest) string {
	return fmt.Sprintf(`Plan a Sundarbans expedition based on:
Mood: %s
Budget Tier: %s (Provide quality accordingly but do not list price)
Duration: %s
Explorers: %d
Specific Needs: %s

Suggest 3 distinct Sundarbans experiences (e.g., Deep Forest, Village Culture, Luxury Cruise).`,
		req.Mood, req.Budget, req.Duration, req.Guests, req.Preferences)
}

func parseRecommendations(data []byte) ([]Recommendation, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("empty recommendation payload")
	}
	var recs []Recommendation
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}
	return recs, nil
}

// ─── Scene images ─────────────────────────────────────────────────────────────

const imageTimeout = 45 * time.Second

// GenerateSceneImage renders a cinematic Sundarbans scene and returns it as a
// data URI. Empty string means "no image" — every failure path is swallowed
// here so callers only deal with present/absent.
func (c *GeminiClient) GenerateSceneImage(ctx context.Context, scene string) string {
	if c == nil || c.client == nil {
		log.Println("⚠️  Image generation skipped: gemini not configured")
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, imageTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"A cinematic wildlife travel photograph of Sundarbans: %s. Royal Bengal Tiger, mangrove roots, mist, 8k, photorealistic, 16:9 widescreen frame.",
		scene)

	model := c.client.GenerativeModel(c.imageModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("⚠️  Image generation failed: %v", err)
		return ""
	}
	return extractInlineImage(resp)
}

// extractInlineImage pulls the first inline image part out of a response and
// encodes it as a data URI, or returns "" when no image part is present.
func extractInlineImage(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
				mime := blob.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(blob.Data))
			}
		}
	}
	return ""
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
