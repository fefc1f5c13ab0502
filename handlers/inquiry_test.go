package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eleganttours/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/health", HealthHandler)
		api.GET("/tours", ToursHandler)
		api.GET("/packages", PackagesHandler)
		api.POST("/inquiry", InquiryHandler)
		api.POST("/newsletter", NewsletterHandler)
		api.POST("/visualize", VisualizeHandler)
		api.POST("/tours/:id/image", TourImageHandler)
		api.GET("/tours/:id/image", TourImageStatusHandler)
	}
	return r
}

// initTestServices wires the relay to a stub endpoint and Gemini to its
// unconfigured fallback mode.
func initTestServices(t *testing.T, relayStatus int) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(relayStatus)
	}))
	t.Cleanup(server.Close)

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("RELAY_ENDPOINT", server.URL)
	services.InitGemini()
	services.InitRelay()
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInquiryHandler_MissingEmail(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, "POST", "/api/inquiry", `{"name": "Asha"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInquiryHandler_InvalidEmail(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, "POST", "/api/inquiry", `{"name": "Asha", "email": "not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInquiryHandler_Delivered(t *testing.T) {
	initTestServices(t, http.StatusOK)
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/inquiry", `{
		"name": "Asha",
		"email": "asha@x.com",
		"phone": "+911234",
		"category": "Tour",
		"package": "Royal Bengal Tiger Safari",
		"travel_date": "2025-03-01",
		"guests": 2
	}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestInquiryHandler_DeliveryFailureSurfaced(t *testing.T) {
	initTestServices(t, http.StatusInternalServerError)
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/inquiry", `{"name": "Asha", "email": "asha@x.com"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestNewsletterHandler(t *testing.T) {
	initTestServices(t, http.StatusOK)
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/newsletter", `{"email": "reader@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = doJSON(r, "POST", "/api/newsletter", `{"email": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandlers(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "GET", "/api/tours", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Royal Bengal Tiger Safari")

	w = doJSON(r, "GET", "/api/packages", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Day Tours: Nature Express")
}

func TestHealthHandler_NoDatabase(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, "GET", "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not initialized")
}

func TestVisualizeHandler_MissingPrompt(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, "POST", "/api/visualize", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVisualizeHandler_UnconfiguredReturnsEmpty(t *testing.T) {
	initTestServices(t, http.StatusOK)
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/visualize", `{"prompt": "tiger at dawn"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "error")
}

func TestTourImageHandler_UnknownTour(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/tours/999/image", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, "GET", "/api/tours/999/image", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTourImageHandler_JobLifecycle(t *testing.T) {
	initTestServices(t, http.StatusOK)
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/tours/2/image", "")
	assert.Equal(t, http.StatusAccepted, w.Code)

	// With Gemini unconfigured the job resolves quickly as failed; the point
	// here is that the id-keyed status settles and polling never errors.
	require.Eventually(t, func() bool {
		w := doJSON(r, "GET", "/api/tours/2/image", "")
		if w.Code != http.StatusOK {
			return false
		}
		return strings.Contains(w.Body.String(), string(services.ImageFailed)) ||
			strings.Contains(w.Body.String(), string(services.ImageSucceeded))
	}, 3*time.Second, 50*time.Millisecond)

	// An unrelated tour id is untouched by tour 2's job.
	w = doJSON(r, "GET", "/api/tours/3/image", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(services.ImageIdle))
}
