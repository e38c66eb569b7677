package services_test

import (
	"strings"
	"testing"

	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/types"
)

func TestSignupAndLogin(t *testing.T) {
	db := setupTestDB(t)

	user, err := services.Signup(db, services.SignupInput{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@test.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("Failed to sign up: %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Error("Password stored in clear")
	}

	logged, err := services.Login(db, services.LoginInput{
		Email:    "asha@test.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("Login returned user %d, want %d", logged.ID, user.ID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	input := services.SignupInput{
		FirstName: "Asha",
		Email:     "dup@test.com",
		Password:  "secret123",
	}
	if _, err := services.Signup(db, input); err != nil {
		t.Fatalf("Failed to sign up: %v", err)
	}

	_, err := services.Signup(db, input)
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Code != 403 || ce.Message != "User already exists" {
		t.Errorf("Expected duplicate email rejection, got %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)

	cases := []services.SignupInput{
		{FirstName: "A", Email: "a@test.com", Password: "secret123"},
		{FirstName: strings.Repeat("a", 31), Email: "b@test.com", Password: "secret123"},
		{FirstName: "Asha", Email: "not-an-email", Password: "secret123"},
		{FirstName: "Asha", Email: "c@test.com", Password: "short"},
	}
	for i, in := range cases {
		_, err := services.Signup(db, in)
		ce, ok := types.AsCustomError(err)
		if !ok || ce.Code != 411 {
			t.Errorf("Case %d: expected 411 validation error, got %v", i, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)

	if _, err := services.Signup(db, services.SignupInput{
		FirstName: "Asha",
		Email:     "wrong@test.com",
		Password:  "secret123",
	}); err != nil {
		t.Fatalf("Failed to sign up: %v", err)
	}

	for _, in := range []services.LoginInput{
		{Email: "wrong@test.com", Password: "secret124"},
		{Email: "unknown@test.com", Password: "secret123"},
	} {
		_, err := services.Login(db, in)
		ce, ok := types.AsCustomError(err)
		if !ok || ce.Code != 403 || ce.Message != "Invalid Credentials" {
			t.Errorf("Login %q: expected Invalid Credentials, got %v", in.Email, err)
		}
	}
}

func TestGuestLifecycle(t *testing.T) {
	db := setupTestDB(t)

	guest, err := services.GuestLogin(db)
	if err != nil {
		t.Fatalf("Failed to create guest: %v", err)
	}
	if !guest.IsGuest {
		t.Error("Expected IsGuest set")
	}
	if !strings.HasSuffix(guest.Email, "@guest.temp") {
		t.Errorf("Unexpected guest email %q", guest.Email)
	}

	second, err := services.GuestLogin(db)
	if err != nil {
		t.Fatalf("Failed to create second guest: %v", err)
	}
	if second.Email == guest.Email {
		t.Error("Guest emails must be unique")
	}

	swept, err := services.SweepGuests(db)
	if err != nil {
		t.Fatalf("Failed to sweep guests: %v", err)
	}
	if swept != 2 {
		t.Errorf("Expected 2 guests swept, got %d", swept)
	}
}
