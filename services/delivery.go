package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DeliveryRequest is the JSON body the form-relay endpoint expects. The
// underscore fields are relay metadata: the relay uses them to set the mail
// subject and the Reply-To header so the agency can answer the lead directly.
type DeliveryRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	Subject    string `json:"_subject"`
	ReplyTo    string `json:"_replyto"`
	AdminEmail string `json:"admin_email"`
}

// DeliveryClient posts lead notifications to the third-party form relay.
// One attempt per call; the relay forwards the payload as an email.
type DeliveryClient struct {
	endpoint   string
	adminEmail string
	httpClient *http.Client
}

const defaultAdminEmail = "info@eleganttours.co.in"

func NewDeliveryClient() *DeliveryClient {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = defaultAdminEmail
	}

	endpoint := os.Getenv("RELAY_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://formsubmit.co/ajax/" + adminEmail
	}

	return &DeliveryClient{
		endpoint:   endpoint,
		adminEmail: adminEmail,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewDeliveryClientWithEndpoint is used by tests to point delivery at a stub.
func NewDeliveryClientWithEndpoint(endpoint, adminEmail string) *DeliveryClient {
	c := NewDeliveryClient()
	c.endpoint = endpoint
	if adminEmail != "" {
		c.adminEmail = adminEmail
	}
	return c
}

// Deliver posts the notification and treats any non-2xx status as rejection.
func (c *DeliveryClient) Deliver(ctx context.Context, dr DeliveryRequest) error {
	if dr.AdminEmail == "" {
		dr.AdminEmail = c.adminEmail
	}

	jsonBody, err := json.Marshal(dr)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("form relay rejected lead (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}
