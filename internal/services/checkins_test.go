package services_test

import (
	"testing"

	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/types"
)

func TestCreateCheckIn(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "checkin@test.com")
	seedEmotion(t, db, "Calm")

	checkIn, err := services.CreateCheckIn(db, userID, services.CheckInInput{
		Emotion:     "Calm",
		Description: "after a walk",
		ActivityTag: " Walking ",
		PlaceTag:    "Park",
	})
	if err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	if checkIn.Emotion.Title != "Calm" {
		t.Error("Expected emotion to be expanded in the result")
	}
	if checkIn.ActivityTag == nil || checkIn.ActivityTag.Title != "walking" {
		t.Errorf("Expected activity tag 'walking', got %+v", checkIn.ActivityTag)
	}
	if checkIn.PlaceTag == nil || checkIn.PlaceTag.Title != "park" {
		t.Errorf("Expected place tag 'park', got %+v", checkIn.PlaceTag)
	}
	if checkIn.PeopleTag != nil {
		t.Error("Expected no people tag")
	}
}

// Emotion titles are canonical; a case variant of a real title is
// rejected like any unknown one.
func TestCreateCheckInUnknownEmotion(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "emotion@test.com")
	seedEmotion(t, db, "Calm")

	for _, title := range []string{"Serene", "calm", "CALM"} {
		_, err := services.CreateCheckIn(db, userID, services.CheckInInput{Emotion: title})
		ce, ok := types.AsCustomError(err)
		if !ok || ce.Message != "Not a valid emotion" {
			t.Errorf("Emotion %q: expected 'Not a valid emotion', got %v", title, err)
		}
	}
}

func TestListCheckInsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice-ci@test.com")
	bob := seedUser(t, db, "bob-ci@test.com")
	seedEmotion(t, db, "Happy")

	if _, err := services.CreateCheckIn(db, alice, services.CheckInInput{Emotion: "Happy"}); err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	bobList, err := services.ListCheckIns(db, bob)
	if err != nil {
		t.Fatalf("Failed to list check-ins: %v", err)
	}
	if len(bobList) != 0 {
		t.Errorf("Expected bob to see 0 check-ins, got %d", len(bobList))
	}

	aliceList, err := services.ListCheckIns(db, alice)
	if err != nil {
		t.Fatalf("Failed to list check-ins: %v", err)
	}
	if len(aliceList) != 1 {
		t.Errorf("Expected alice to see 1 check-in, got %d", len(aliceList))
	}
}

func TestUpdateCheckInRetitlesLinkedTag(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "update@test.com")
	seedEmotion(t, db, "Tired")

	checkIn, err := services.CreateCheckIn(db, userID, services.CheckInInput{
		Emotion:     "Tired",
		ActivityTag: "jogging",
	})
	if err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	newLabel := " Running "
	updated, err := services.UpdateCheckIn(db, userID, checkIn.ID, services.CheckInUpdateInput{
		ActivityTag: &newLabel,
	})
	if err != nil {
		t.Fatalf("Failed to update check-in: %v", err)
	}

	if updated.ActivityTagID == nil || *updated.ActivityTagID != *checkIn.ActivityTagID {
		t.Error("Expected the tag link to stay on the same row")
	}
	if updated.ActivityTag == nil || updated.ActivityTag.Title != "running" {
		t.Errorf("Expected tag retitled to 'running', got %+v", updated.ActivityTag)
	}
}

// Renaming a linked tag to a title the user already owns merges the
// check-in onto the existing row rather than tripping the (user, title)
// unique index, and the abandoned row disappears once nothing else
// references it.
func TestUpdateCheckInMergesDuplicateTag(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "merge@test.com")
	seedEmotion(t, db, "Tired")

	runningID, err := services.ResolveActivityTag(db, userID, "running")
	if err != nil {
		t.Fatalf("Failed to resolve tag: %v", err)
	}

	checkIn, err := services.CreateCheckIn(db, userID, services.CheckInInput{
		Emotion:     "Tired",
		ActivityTag: "jogging",
	})
	if err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	newLabel := "Running"
	updated, err := services.UpdateCheckIn(db, userID, checkIn.ID, services.CheckInUpdateInput{
		ActivityTag: &newLabel,
	})
	if err != nil {
		t.Fatalf("Failed to update check-in: %v", err)
	}

	if updated.ActivityTagID == nil || *updated.ActivityTagID != runningID {
		t.Errorf("Expected check-in relinked to tag %d, got %v", runningID, updated.ActivityTagID)
	}
	if updated.ActivityTag == nil || updated.ActivityTag.Title != "running" {
		t.Errorf("Expected tag 'running', got %+v", updated.ActivityTag)
	}

	tags, err := services.ListActivityTags(db, userID)
	if err != nil {
		t.Fatalf("Failed to list tags: %v", err)
	}
	if len(tags) != 1 {
		t.Errorf("Expected the orphaned 'jogging' row removed, got %d tags", len(tags))
	}
}

// A shared tag survives a merge that moves only one check-in off it.
func TestUpdateCheckInMergeKeepsSharedTag(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "shared@test.com")
	seedEmotion(t, db, "Tired")

	if _, err := services.ResolveActivityTag(db, userID, "running"); err != nil {
		t.Fatalf("Failed to resolve tag: %v", err)
	}

	first, err := services.CreateCheckIn(db, userID, services.CheckInInput{
		Emotion:     "Tired",
		ActivityTag: "jogging",
	})
	if err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}
	second, err := services.CreateCheckIn(db, userID, services.CheckInInput{
		Emotion:     "Tired",
		ActivityTag: "jogging",
	})
	if err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}
	if *first.ActivityTagID != *second.ActivityTagID {
		t.Fatal("Expected both check-ins to share the jogging tag")
	}

	newLabel := "running"
	if _, err := services.UpdateCheckIn(db, userID, first.ID, services.CheckInUpdateInput{
		ActivityTag: &newLabel,
	}); err != nil {
		t.Fatalf("Failed to update check-in: %v", err)
	}

	tags, err := services.ListActivityTags(db, userID)
	if err != nil {
		t.Fatalf("Failed to list tags: %v", err)
	}
	if len(tags) != 2 {
		t.Errorf("Expected 'jogging' kept for the second check-in, got %d tags", len(tags))
	}
}

// A wrong owner looks exactly like a missing check-in.
func TestDeleteCheckInWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice-del@test.com")
	bob := seedUser(t, db, "bob-del@test.com")
	seedEmotion(t, db, "Sad")

	checkIn, err := services.CreateCheckIn(db, alice, services.CheckInInput{Emotion: "Sad"})
	if err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	_, err = services.DeleteCheckIn(db, bob, checkIn.ID)
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Code != 404 {
		t.Errorf("Expected 404 for wrong owner, got %v", err)
	}

	// Alice still owns it and can delete it.
	deleted, err := services.DeleteCheckIn(db, alice, checkIn.ID)
	if err != nil {
		t.Fatalf("Failed to delete own check-in: %v", err)
	}
	if deleted.ID != checkIn.ID {
		t.Errorf("Expected deleted view of check-in %d, got %d", checkIn.ID, deleted.ID)
	}
}
