package models

import "testing"

func TestCreateUser(t *testing.T) {
	u, err := CreateUser("reader@example.com", "secret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != ROLE_USER {
		t.Fatalf("expected default role %q, got %q", ROLE_USER, u.Role)
	}
	if u.Password == "secret-password" {
		t.Fatalf("password was stored in plain text")
	}
	if !u.CheckPassword("secret-password") {
		t.Fatalf("expected password to verify against its hash")
	}
	if u.CheckPassword("wrong") {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestCreateUserRejectsBadInput(t *testing.T) {
	if _, err := CreateUser("not-an-email", "secret-password"); err == nil {
		t.Fatalf("expected error for invalid email")
	}
	if _, err := CreateUser("reader@example.com", "short"); err == nil {
		t.Fatalf("expected error for too-short password")
	}
}

func TestIsAdmin(t *testing.T) {
	u := &User{Role: ROLE_ADMIN}
	if !u.IsAdmin() {
		t.Fatalf("expected admin role to report admin")
	}
	u.Role = ROLE_USER
	if u.IsAdmin() {
		t.Fatalf("expected user role to not report admin")
	}
}

func TestValidReactionKind(t *testing.T) {
	if !ValidReactionKind(REACTION_LIKE) || !ValidReactionKind(REACTION_DISLIKE) {
		t.Fatalf("expected both canonical kinds to be valid")
	}
	for _, kind := range []string{"", "Like", "love", "dislike "} {
		if ValidReactionKind(kind) {
			t.Fatalf("expected kind %q to be invalid", kind)
		}
	}
}
