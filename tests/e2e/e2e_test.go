package e2e_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/ruok-app/ruok-api/tests/helpers"
)

// TestE2E boots the full stack in containers and walks the core user
// journey over HTTP: sign up, check in, rate a tool, book a therapist.
func TestE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	_ = godotenv.Load("../../.env")

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to create test containers: %v", err)
	}
	defer tc.Terminate(t)

	baseURL := tc.BaseURL(t)
	email := fmt.Sprintf("e2e_%d@test.com", time.Now().UnixMilli())
	session := helpers.AcquireSession(t, baseURL, email, helpers.GeneratePassword()+"A1!")

	client := &http.Client{Timeout: 30 * time.Second}

	var checkInID float64

	t.Run("CreateCheckIn", func(t *testing.T) {
		body := helpers.MustJSON(t, map[string]string{
			"emotion":     "Calm",
			"description": "end to end",
			"activityTag": "Walking",
		})
		resp, err := client.Do(helpers.AuthedRequest(t, "POST", baseURL+"/api/checkin/new", body, session))
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, http.StatusOK)

		var result struct {
			Data struct {
				ID float64 `json:"id"`
			} `json:"data"`
		}
		helpers.ParseJSON(t, resp, &result)
		if result.Data.ID == 0 {
			t.Fatal("Expected a check-in id in the response")
		}
		checkInID = result.Data.ID
	})

	t.Run("RecordFeedback", func(t *testing.T) {
		body := helpers.MustJSON(t, map[string]interface{}{
			"toolName": "breathing",
			"rating":   75,
			"checkIn":  checkInID,
		})
		resp, err := client.Do(helpers.AuthedRequest(t, "POST", baseURL+"/api/feedback/new", body, session))
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, http.StatusOK)
	})

	t.Run("ListCheckIns", func(t *testing.T) {
		resp, err := client.Do(helpers.AuthedRequest(t, "GET", baseURL+"/api/checkin/getAll", nil, session))
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, http.StatusOK)

		var result struct {
			Data []map[string]interface{} `json:"data"`
		}
		helpers.ParseJSON(t, resp, &result)
		if len(result.Data) != 1 {
			t.Errorf("Expected 1 check-in, got %d", len(result.Data))
		}
	})

	t.Run("UnauthenticatedRejected", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/api/checkin/getAll")
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, http.StatusUnauthorized)
		resp.Body.Close()
	})

	t.Run("Metrics", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/metrics")
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, http.StatusOK)
		resp.Body.Close()
	})
}
