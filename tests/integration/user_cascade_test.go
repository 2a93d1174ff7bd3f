package integration

import (
	"context"
	"errors"
	"testing"

	"Agora/internal/core/posts"
	"Agora/internal/core/users"
	"Agora/internal/db/postgres"
)

// Deleting a user must leave no row referencing them in any table, must take
// their posts (with those posts' comments and likes) along, and must correct
// the stored like_count of other users' posts they had liked.
func TestUserDelete_CascadeRemovesAllReferences(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	counterRepo := postgres.NewCounterRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, userRepo, "alice@example.com", "alice")
	bob := createTestUser(t, userRepo, "bob@example.com", "bob")

	// Bob's post, liked by both and commented on by Alice
	bobPost := createTestPost(t, postRepo, bob.ID, "bob's post")
	createTestComment(t, commentRepo, bobPost.ID, alice.ID)
	if _, err := counterRepo.ToggleLike(ctx, bobPost.ID, alice.ID); err != nil {
		t.Fatalf("Failed to like bob's post as alice: %v", err)
	}
	if _, err := counterRepo.ToggleLike(ctx, bobPost.ID, bob.ID); err != nil {
		t.Fatalf("Failed to like bob's post as bob: %v", err)
	}

	// Alice's post, commented on and liked by Bob
	alicePost := createTestPost(t, postRepo, alice.ID, "alice's post")
	createTestComment(t, commentRepo, alicePost.ID, bob.ID)
	if _, err := counterRepo.ToggleLike(ctx, alicePost.ID, bob.ID); err != nil {
		t.Fatalf("Failed to like alice's post as bob: %v", err)
	}

	// Messages both ways
	sendTestMessage(t, messageRepo, alice.ID, bob.ID)
	sendTestMessage(t, messageRepo, bob.ID, alice.ID)

	if err := userRepo.Delete(ctx, alice.ID); err != nil {
		t.Fatalf("Failed to delete alice: %v", err)
	}

	// Nothing references alice anymore
	if n := countRows(t, db, "SELECT COUNT(*) FROM posts WHERE user_id = $1", alice.ID); n != 0 {
		t.Errorf("Expected 0 posts by alice, got %d", n)
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM comments WHERE user_id = $1", alice.ID); n != 0 {
		t.Errorf("Expected 0 comments by alice, got %d", n)
	}
	if n := countRows(t, db,
		"SELECT COUNT(*) FROM messages WHERE sender_id = $1 OR recipient_id = $1", alice.ID); n != 0 {
		t.Errorf("Expected 0 messages involving alice, got %d", n)
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM post_likes WHERE user_id = $1", alice.ID); n != 0 {
		t.Errorf("Expected 0 likes by alice, got %d", n)
	}

	// Alice's post took its dependents with it, including bob's rows on it
	if n := countRows(t, db, "SELECT COUNT(*) FROM comments WHERE post_id = $1", alicePost.ID); n != 0 {
		t.Errorf("Expected 0 comments on alice's deleted post, got %d", n)
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM post_likes WHERE post_id = $1", alicePost.ID); n != 0 {
		t.Errorf("Expected 0 likes on alice's deleted post, got %d", n)
	}
	if _, err := postRepo.GetByID(ctx, alicePost.ID); !errors.Is(err, posts.ErrPostNotFound) {
		t.Errorf("Expected ErrPostNotFound for alice's post, got %v", err)
	}

	// Bob's post survives with its like_count corrected to the remaining set
	got, err := postRepo.GetByID(ctx, bobPost.ID)
	if err != nil {
		t.Fatalf("Failed to fetch bob's post: %v", err)
	}
	if got.LikeCount != 1 {
		t.Errorf("Expected bob's post like_count 1 after alice's unlike, got %d", got.LikeCount)
	}
	if n := countRows(t, db, "SELECT COUNT(*) FROM post_likes WHERE post_id = $1", bobPost.ID); n != 1 {
		t.Errorf("Expected 1 remaining like row on bob's post, got %d", n)
	}
	if got.CommentCount != 0 {
		t.Errorf("Expected bob's post comment_count 0 after alice's comment went, got %d", got.CommentCount)
	}

	// Bob is untouched
	if _, err := userRepo.GetByID(ctx, bob.ID); err != nil {
		t.Errorf("Expected bob to survive, got %v", err)
	}

	// The account is gone for good
	if err := userRepo.Delete(ctx, alice.ID); !errors.Is(err, users.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound on second delete, got %v", err)
	}
}
