package services_test

import (
	"testing"

	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/types"
)

func TestCreateAndGetPostCountsView(t *testing.T) {
	db := setupTestDB(t)

	post, err := services.CreatePost(db, services.PostInput{
		Title:   "Exam stress",
		Author:  "Ana",
		Email:   "ana@example.com",
		Content: "How do you all cope during finals?",
		Tags:    []string{"stress", "exams"},
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if post.Views != 0 {
		t.Fatalf("Expected 0 views on a fresh post, got %d", post.Views)
	}

	got, err := services.GetPost(db, post.ID)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Views != 1 {
		t.Fatalf("Expected view counter 1 after one fetch, got %d", got.Views)
	}
}

func TestCreatePostValidation(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.CreatePost(db, services.PostInput{Title: "No body"})
	cerr, ok := types.AsCustomError(err)
	if !ok || cerr.Code != 400 {
		t.Fatalf("Expected 400 validation error, got %v", err)
	}
}

func TestUpdatePostAppliesPresentFields(t *testing.T) {
	db := setupTestDB(t)

	post, err := services.CreatePost(db, services.PostInput{
		Title:   "Original title",
		Author:  "Ben",
		Email:   "ben@example.com",
		Content: "Original content",
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	newTitle := "Edited title"
	updated, err := services.UpdatePost(db, post.ID, services.PostUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}
	if updated.Title != "Edited title" {
		t.Fatalf("Expected updated title, got %q", updated.Title)
	}
	if updated.Content != "Original content" {
		t.Fatalf("Expected content untouched, got %q", updated.Content)
	}

	_, err = services.UpdatePost(db, post.ID+100, services.PostUpdate{Title: &newTitle})
	cerr, ok := types.AsCustomError(err)
	if !ok || cerr.Code != 404 {
		t.Fatalf("Expected 404 for unknown post, got %v", err)
	}
}

func TestToggleLikePost(t *testing.T) {
	db := setupTestDB(t)

	post, err := services.CreatePost(db, services.PostInput{
		Title:   "Likes",
		Author:  "Cai",
		Email:   "cai@example.com",
		Content: "Like toggle",
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	liked, err := services.ToggleLikePost(db, post.ID)
	if err != nil {
		t.Fatalf("ToggleLikePost failed: %v", err)
	}
	if !liked.IsLiked || liked.Likes != 1 {
		t.Fatalf("Expected liked post with 1 like, got liked=%v likes=%d", liked.IsLiked, liked.Likes)
	}

	unliked, err := services.ToggleLikePost(db, post.ID)
	if err != nil {
		t.Fatalf("ToggleLikePost failed: %v", err)
	}
	if unliked.IsLiked || unliked.Likes != 0 {
		t.Fatalf("Expected unliked post with 0 likes, got liked=%v likes=%d", unliked.IsLiked, unliked.Likes)
	}
}

func TestDeletePostRemovesComments(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "del@example.com")

	post, err := services.CreatePost(db, services.PostInput{
		Title:   "Doomed",
		Author:  "Dee",
		Email:   "dee@example.com",
		Content: "Will be deleted",
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	_, err = services.CreateComment(db, userID, services.CommentInput{
		PostID:  post.ID,
		Content: "First",
	})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	if err := services.DeletePost(db, post.ID); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}

	comments, err := services.ListComments(db, post.ID)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("Expected comments removed with the post, found %d", len(comments))
	}

	err = services.DeletePost(db, post.ID)
	cerr, ok := types.AsCustomError(err)
	if !ok || cerr.Code != 404 {
		t.Fatalf("Expected 404 deleting a missing post, got %v", err)
	}
}

func TestToggleLikeCommentTracksLikers(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "liker@example.com")

	post, err := services.CreatePost(db, services.PostInput{
		Title:   "Threads",
		Author:  "Eve",
		Email:   "eve@example.com",
		Content: "Comment likes",
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	comment, err := services.CreateComment(db, userID, services.CommentInput{
		PostID:  post.ID,
		Content: "Well said",
	})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	liked, err := services.ToggleLikeComment(db, userID, comment.ID)
	if err != nil {
		t.Fatalf("ToggleLikeComment failed: %v", err)
	}
	if liked.Likes != 1 {
		t.Fatalf("Expected 1 like, got %d", liked.Likes)
	}

	unliked, err := services.ToggleLikeComment(db, userID, comment.ID)
	if err != nil {
		t.Fatalf("ToggleLikeComment failed: %v", err)
	}
	if unliked.Likes != 0 {
		t.Fatalf("Expected like removed on second toggle, got %d", unliked.Likes)
	}
}
