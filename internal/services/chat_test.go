package services

import (
	"testing"

	"google.golang.org/genai"
)

func TestHistoryContentsRoles(t *testing.T) {
	history := []ChatMessage{
		{From: "user", Text: "I had a rough day"},
		{From: "bot", Text: "I'm sorry to hear that"},
	}

	contents := historyContents(history, "Can we talk about it?")
	if len(contents) != 3 {
		t.Fatalf("Expected 3 contents, got %d", len(contents))
	}

	wantRoles := []genai.Role{genai.RoleUser, genai.RoleModel, genai.RoleUser}
	for i, want := range wantRoles {
		if contents[i].Role != string(want) {
			t.Errorf("Content %d: expected role %q, got %q", i, want, contents[i].Role)
		}
	}
	if len(contents[2].Parts) == 0 || contents[2].Parts[0].Text != "Can we talk about it?" {
		t.Error("Expected the current user message appended last")
	}
}
