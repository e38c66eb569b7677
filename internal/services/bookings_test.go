package services_test

import (
	"testing"

	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/types"
)

func TestAvailabilityFreshDay(t *testing.T) {
	db := setupTestDB(t)
	therapistID := seedTherapist(t, db, "fresh@test.com")

	slots, err := services.GetAvailability(db, therapistID, "2025-03-10")
	if err != nil {
		t.Fatalf("Failed to get availability: %v", err)
	}

	if len(slots) != len(services.SlotUniverse) {
		t.Fatalf("Expected %d slots, got %d", len(services.SlotUniverse), len(slots))
	}
	for i, slot := range services.SlotUniverse {
		if slots[i] != slot {
			t.Errorf("Slot %d: expected %q, got %q", i, slot, slots[i])
		}
	}
}

func TestCreateBookingRemovesSlot(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "booker@test.com")
	therapistID := seedTherapist(t, db, "busy@test.com")

	booking, err := services.CreateBooking(db, userID, services.BookingInput{
		TherapistID: therapistID,
		Date:        "2025-03-10",
		TimeSlot:    "11:00 am",
	})
	if err != nil {
		t.Fatalf("Failed to create booking: %v", err)
	}
	if booking.Status != models.BookingPending {
		t.Errorf("Expected status pending, got %q", booking.Status)
	}

	slots, err := services.GetAvailability(db, therapistID, "2025-03-10")
	if err != nil {
		t.Fatalf("Failed to get availability: %v", err)
	}
	if len(slots) != len(services.SlotUniverse)-1 {
		t.Errorf("Expected %d slots, got %d", len(services.SlotUniverse)-1, len(slots))
	}
	for _, slot := range slots {
		if slot == "11:00 am" {
			t.Error("Booked slot still reported available")
		}
	}

	// Other days are unaffected.
	nextDay, err := services.GetAvailability(db, therapistID, "2025-03-11")
	if err != nil {
		t.Fatalf("Failed to get availability: %v", err)
	}
	if len(nextDay) != len(services.SlotUniverse) {
		t.Errorf("Expected full universe on the next day, got %d slots", len(nextDay))
	}
}

func TestCreateBookingConflict(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice-bk@test.com")
	bob := seedUser(t, db, "bob-bk@test.com")
	therapistID := seedTherapist(t, db, "popular@test.com")

	input := services.BookingInput{
		TherapistID: therapistID,
		Date:        "2025-03-10",
		TimeSlot:    "02:00 pm",
	}

	if _, err := services.CreateBooking(db, alice, input); err != nil {
		t.Fatalf("Failed to create first booking: %v", err)
	}

	_, err := services.CreateBooking(db, bob, input)
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Code != 409 || ce.Message != "This slot is already booked." {
		t.Errorf("Expected slot conflict, got %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "val-bk@test.com")
	therapistID := seedTherapist(t, db, "val-th@test.com")

	// Missing fields
	_, err := services.CreateBooking(db, userID, services.BookingInput{TherapistID: therapistID})
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Message != "Missing required booking details" {
		t.Errorf("Expected missing details error, got %v", err)
	}

	// Bad date
	_, err = services.CreateBooking(db, userID, services.BookingInput{
		TherapistID: therapistID,
		Date:        "10-03-2025",
		TimeSlot:    "09:00 am",
	})
	ce, ok = types.AsCustomError(err)
	if !ok || ce.Message != "Invalid date format" {
		t.Errorf("Expected date format error, got %v", err)
	}

	// Unknown therapist
	_, err = services.CreateBooking(db, userID, services.BookingInput{
		TherapistID: 9999,
		Date:        "2025-03-10",
		TimeSlot:    "09:00 am",
	})
	ce, ok = types.AsCustomError(err)
	if !ok || ce.Code != 404 || ce.Message != "Therapist not found" {
		t.Errorf("Expected therapist not found, got %v", err)
	}

	// A regular user is not bookable.
	otherUser := seedUser(t, db, "not-a-therapist@test.com")
	_, err = services.CreateBooking(db, userID, services.BookingInput{
		TherapistID: otherUser,
		Date:        "2025-03-10",
		TimeSlot:    "09:00 am",
	})
	ce, ok = types.AsCustomError(err)
	if !ok || ce.Code != 404 {
		t.Errorf("Expected therapist not found for plain user, got %v", err)
	}
}

// Cancelled bookings release their slot.
func TestAvailabilityIgnoresCancelled(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "cancel@test.com")
	therapistID := seedTherapist(t, db, "cancel-th@test.com")

	booking, err := services.CreateBooking(db, userID, services.BookingInput{
		TherapistID: therapistID,
		Date:        "2025-03-10",
		TimeSlot:    "03:00 pm",
	})
	if err != nil {
		t.Fatalf("Failed to create booking: %v", err)
	}

	cancelled, err := services.CancelBooking(db, userID, booking.ID)
	if err != nil {
		t.Fatalf("Failed to cancel booking: %v", err)
	}
	if cancelled.Status != models.BookingCancelled {
		t.Errorf("Expected status cancelled, got %q", cancelled.Status)
	}

	slots, err := services.GetAvailability(db, therapistID, "2025-03-10")
	if err != nil {
		t.Fatalf("Failed to get availability: %v", err)
	}
	if len(slots) != len(services.SlotUniverse) {
		t.Errorf("Expected cancelled slot released, got %d slots", len(slots))
	}
}

// A cancelled booking leaves the slot reservable again; the cleared
// active flag keeps the old row out of the slot unique index.
func TestCancelThenRebookSlot(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "rebook-a@test.com")
	bob := seedUser(t, db, "rebook-b@test.com")
	therapistID := seedTherapist(t, db, "rebook-th@test.com")

	input := services.BookingInput{
		TherapistID: therapistID,
		Date:        "2025-09-20",
		TimeSlot:    "10:00 am",
	}

	first, err := services.CreateBooking(db, alice, input)
	if err != nil {
		t.Fatalf("Failed to create booking: %v", err)
	}

	if _, err := services.CancelBooking(db, alice, first.ID); err != nil {
		t.Fatalf("Failed to cancel booking: %v", err)
	}

	slots, err := services.GetAvailability(db, therapistID, "2025-09-20")
	if err != nil {
		t.Fatalf("Failed to get availability: %v", err)
	}
	if len(slots) != len(services.SlotUniverse) {
		t.Fatalf("Expected all slots free after cancel, got %d", len(slots))
	}

	second, err := services.CreateBooking(db, bob, input)
	if err != nil {
		t.Fatalf("Failed to rebook a cancelled slot: %v", err)
	}
	if second.Status != models.BookingPending {
		t.Errorf("Expected fresh pending booking, got %q", second.Status)
	}
	if second.ID == first.ID {
		t.Error("Expected a new booking row, got the cancelled one")
	}
}

func TestCancelBookingWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "own-bk@test.com")
	intruder := seedUser(t, db, "intrude-bk@test.com")
	therapistID := seedTherapist(t, db, "own-th@test.com")

	booking, err := services.CreateBooking(db, owner, services.BookingInput{
		TherapistID: therapistID,
		Date:        "2025-09-21",
		TimeSlot:    "09:00 am",
	})
	if err != nil {
		t.Fatalf("Failed to create booking: %v", err)
	}

	_, err = services.CancelBooking(db, intruder, booking.ID)
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Code != 404 {
		t.Errorf("Expected 404 for foreign booking, got %v", err)
	}
}
