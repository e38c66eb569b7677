package helpers

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"testing"
)

func randInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// GeneratePassword generates a 10 character password with a capital and special char
func GeneratePassword() string {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		special = "!@#$%^&*"
		numbers = "0123456789"
		all     = lower + upper + special + numbers
	)

	password := make([]byte, 10)
	password[0] = upper[randInt(len(upper))]
	password[1] = special[randInt(len(special))]
	password[2] = numbers[randInt(len(numbers))]

	for i := 3; i < 10; i++ {
		password[i] = all[randInt(len(all))]
	}

	for i := range password {
		j := randInt(len(password))
		password[i], password[j] = password[j], password[i]
	}

	return string(password)
}

// AcquireSession signs up and logs in against a running API, returning
// the session cookie to attach to subsequent requests.
func AcquireSession(t *testing.T, baseURL, email, password string) *http.Cookie {
	t.Helper()

	signupBody, _ := json.Marshal(map[string]string{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  password,
	})
	resp, err := http.Post(baseURL+"/api/auth/signup", "application/json", bytes.NewReader(signupBody))
	if err != nil {
		t.Fatalf("Signup request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		// Might already exist; fall through to login.
		t.Logf("Signup returned %d, trying login", resp.StatusCode)
	}

	loginBody, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	resp, err = http.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader(loginBody))
	if err != nil {
		t.Fatalf("Login request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Login failed with status %d", resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			return cookie
		}
	}
	t.Fatal("Login response did not set a session cookie")
	return nil
}

// AuthedRequest builds a request with the session cookie attached.
func AuthedRequest(t *testing.T, method, url string, body []byte, session *http.Cookie) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(session)
	return req
}

// MustJSON marshals v or fails the test.
func MustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal %v: %v", v, err)
	}
	return b
}
