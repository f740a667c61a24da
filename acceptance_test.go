package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestServerStartup is an acceptance test that verifies the fully wired
// router can be built from a live fixture.
func TestServerStartup(t *testing.T) {
	fixture := newGatewayFixture(t)
	assert.NotNil(t, fixture.router, "Router should be initialized")
}

// TestHealthEndpointAcceptance is an end-to-end acceptance test
// It simulates a real HTTP request to verify the gateway works as expected
func TestHealthEndpointAcceptance(t *testing.T) {
	fixture := newGatewayFixture(t)

	w := fixture.request(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code, "Health endpoint should return 200 OK")
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")

	assert.True(t, response.Success, "Success field should be true")
	assert.Equal(t, "Bar client gateway is running", response.Message)
}

// TestHealthEndpointAvailability tests that the health endpoint is available immediately
func TestHealthEndpointAvailability(t *testing.T) {
	fixture := newGatewayFixture(t)

	// Make multiple requests to ensure consistency
	for i := 0; i < 5; i++ {
		w := fixture.request(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code,
			fmt.Sprintf("Request %d should succeed", i+1))

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, true, response["success"],
			fmt.Sprintf("Request %d should have success=true", i+1))
	}
}

// TestHealthEndpointResponseTime tests that the endpoint responds quickly
func TestHealthEndpointResponseTime(t *testing.T) {
	fixture := newGatewayFixture(t)

	start := time.Now()
	w := fixture.request(http.MethodGet, "/health", "")
	duration := time.Since(start)

	assert.Equal(t, http.StatusOK, w.Code)
	// The health check never touches the ordering service
	assert.Less(t, duration, 100*time.Millisecond,
		"Health endpoint should respond in less than 100ms")
}
