package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryClient_Accepted(t *testing.T) {
	var got DeliveryRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewDeliveryClientWithEndpoint(server.URL, "ops@example.com")
	err := client.Deliver(context.Background(), DeliveryRequest{
		Name:    "Asha",
		Email:   "asha@x.com",
		Phone:   "+911234",
		Message: "details",
		Subject: "New Inquiry - Tour - Asha",
		ReplyTo: "asha@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", got.AdminEmail, "admin hint filled from client config")
	assert.Equal(t, "asha@x.com", got.ReplyTo)
}

func TestDeliveryClient_RejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "relay quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewDeliveryClientWithEndpoint(server.URL, "")
	err := client.Deliver(context.Background(), DeliveryRequest{Name: "Asha", Email: "asha@x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "relay quota exceeded")
}

func TestDeliveryClient_Unreachable(t *testing.T) {
	client := NewDeliveryClientWithEndpoint("http://127.0.0.1:1", "")
	err := client.Deliver(context.Background(), DeliveryRequest{Name: "Asha", Email: "asha@x.com"})
	assert.Error(t, err)
}
