package services_test

import (
	"testing"

	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/types"
)

func TestCreateFeedback(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "fb@test.com")
	seedEmotion(t, db, "Stressed")

	checkIn, err := services.CreateCheckIn(db, userID, services.CheckInInput{Emotion: "Stressed"})
	if err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	feedback, err := services.CreateFeedback(db, userID, services.FeedbackInput{
		ToolName:  "breathing",
		Rating:    80,
		CheckInID: checkIn.ID,
	})
	if err != nil {
		t.Fatalf("Failed to create feedback: %v", err)
	}

	if feedback.CheckIn.ID != checkIn.ID {
		t.Error("Expected check-in expanded in the feedback view")
	}
	if feedback.CheckIn.Emotion.Title != "Stressed" {
		t.Error("Expected nested emotion expanded in the feedback view")
	}
}

func TestCreateFeedbackUnknownCheckIn(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "fb-miss@test.com")

	_, err := services.CreateFeedback(db, userID, services.FeedbackInput{
		ToolName:  "grounding",
		Rating:    50,
		CheckInID: 9999,
	})
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Code != 404 || ce.Message != "Invalid Checkin Id" {
		t.Errorf("Expected 'Invalid Checkin Id', got %v", err)
	}
}

func TestListFeedbackScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice-fb@test.com")
	bob := seedUser(t, db, "bob-fb@test.com")
	seedEmotion(t, db, "Anxious")

	checkIn, err := services.CreateCheckIn(db, alice, services.CheckInInput{Emotion: "Anxious"})
	if err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	if _, err := services.CreateFeedback(db, alice, services.FeedbackInput{
		ToolName: "journaling", Rating: 70, CheckInID: checkIn.ID,
	}); err != nil {
		t.Fatalf("Failed to create feedback: %v", err)
	}

	bobList, err := services.ListFeedback(db, bob)
	if err != nil {
		t.Fatalf("Failed to list feedback: %v", err)
	}
	if len(bobList) != 0 {
		t.Errorf("Expected bob to see 0 entries, got %d", len(bobList))
	}

	aliceList, err := services.ListFeedback(db, alice)
	if err != nil {
		t.Fatalf("Failed to list feedback: %v", err)
	}
	if len(aliceList) != 1 {
		t.Errorf("Expected alice to see 1 entry, got %d", len(aliceList))
	}
}
