package services_test

import (
	"testing"

	"github.com/ruok-app/ruok-api/internal/services"
)

func TestNormalizeTag(t *testing.T) {
	cases := map[string]string{
		"Gym":          "gym",
		"  gym  ":      "gym",
		"GYM":          "gym",
		"study group":  "study group",
		" Study Group": "study group",
	}
	for raw, want := range cases {
		if got := services.NormalizeTag(raw); got != want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", raw, got, want)
		}
	}
}

// Resolving spelling variants of the same label must land on one row.
func TestResolveTagIdempotent(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "tags@test.com")

	first, err := services.ResolveActivityTag(db, userID, "Gym")
	if err != nil {
		t.Fatalf("Failed to resolve tag: %v", err)
	}

	for _, variant := range []string{"gym", " GYM ", "Gym"} {
		id, err := services.ResolveActivityTag(db, userID, variant)
		if err != nil {
			t.Fatalf("Failed to resolve variant %q: %v", variant, err)
		}
		if id != first {
			t.Errorf("Variant %q resolved to id %d, want %d", variant, id, first)
		}
	}

	tags, err := services.ListActivityTags(db, userID)
	if err != nil {
		t.Fatalf("Failed to list tags: %v", err)
	}
	if len(tags) != 1 {
		t.Errorf("Expected 1 tag row, got %d", len(tags))
	}
}

// The same title owned by different users must be different rows.
func TestResolveTagPerUser(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice@test.com")
	bob := seedUser(t, db, "bob@test.com")

	aliceID, err := services.ResolvePlaceTag(db, alice, "library")
	if err != nil {
		t.Fatalf("Failed to resolve for alice: %v", err)
	}
	bobID, err := services.ResolvePlaceTag(db, bob, "library")
	if err != nil {
		t.Fatalf("Failed to resolve for bob: %v", err)
	}

	if aliceID == bobID {
		t.Errorf("Expected distinct tag rows per user, both got id %d", aliceID)
	}
}

// The same title in different tag kinds must be independent rows.
func TestResolveTagPerKind(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "kinds@test.com")

	if _, err := services.ResolveActivityTag(db, userID, "home"); err != nil {
		t.Fatalf("Failed to resolve activity tag: %v", err)
	}
	if _, err := services.ResolvePlaceTag(db, userID, "home"); err != nil {
		t.Fatalf("Failed to resolve place tag: %v", err)
	}
	if _, err := services.ResolvePeopleTag(db, userID, "home"); err != nil {
		t.Fatalf("Failed to resolve people tag: %v", err)
	}

	activity, _ := services.ListActivityTags(db, userID)
	place, _ := services.ListPlaceTags(db, userID)
	people, _ := services.ListPeopleTags(db, userID)

	if len(activity) != 1 || len(place) != 1 || len(people) != 1 {
		t.Errorf("Expected one row per kind, got activity=%d place=%d people=%d",
			len(activity), len(place), len(people))
	}
}
