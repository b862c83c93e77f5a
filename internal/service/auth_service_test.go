package service

import (
	"errors"
	"testing"
	"time"

	"tasktracker/internal/models"
	"tasktracker/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory repository.Authorization.
type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(username, passwordHash string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.users[username]; ok {
		return 0, repository.ErrDuplicateUsername
	}
	u := &models.User{ID: f.nextID, Username: username, PasswordHash: passwordHash}
	f.users[username] = u
	f.nextID++
	return u.ID, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[username], nil
}

func newTestAuthService(repo repository.Authorization, ttl time.Duration) *AuthService {
	return NewAuthService(repo, AuthConfig{SigningKey: "test-secret", TokenTTL: ttl})
}

func TestAuthService_SignUpHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(repo, time.Hour)

	id, err := s.SignUp("alice", "pw1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if id != 1 {
		t.Fatalf("want id=1, got %d", id)
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.PasswordHash == "pw1" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("correct password does not verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw2")); err == nil {
		t.Fatal("wrong password verified")
	}
}

func TestAuthService_SignUpDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(repo, time.Hour)

	if _, err := s.SignUp("alice", "pw1"); err != nil {
		t.Fatalf("first sign up: %v", err)
	}
	_, err := s.SignUp("alice", "pw2")
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_SignUpEmptyPassword(t *testing.T) {
	s := newTestAuthService(newFakeUserRepo(), time.Hour)
	if _, err := s.SignUp("alice", "   "); err == nil {
		t.Fatal("expected error for blank password")
	}
}

func TestAuthService_GenerateToken(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(repo, time.Hour)

	if _, err := s.SignUp("alice", "pw1"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.GenerateToken("alice", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user looks the same as wrong password", func(t *testing.T) {
		_, err := s.GenerateToken("nobody", "pw1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("valid credentials round trip through ParseToken", func(t *testing.T) {
		token, err := s.GenerateToken("alice", "pw1")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		uid, err := s.ParseToken(token)
		if err != nil {
			t.Fatalf("parse token: %v", err)
		}
		if uid != 1 {
			t.Fatalf("want user id 1, got %d", uid)
		}
	})
}

func TestAuthService_ParseTokenFailures(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(repo, time.Hour)
	if _, err := s.SignUp("alice", "pw1"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	t.Run("garbage token", func(t *testing.T) {
		if _, err := s.ParseToken("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		other := NewAuthService(repo, AuthConfig{SigningKey: "other-secret", TokenTTL: time.Hour})
		token, err := other.GenerateToken("alice", "pw1")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		if _, err := s.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		// A negative TTL issues a token that is already past its expiry.
		expired := newTestAuthService(repo, -time.Minute)
		token, err := expired.GenerateToken("alice", "pw1")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		if _, err := s.ParseToken(token); !errors.Is(err, ErrExpiredToken) {
			t.Fatalf("expected ErrExpiredToken, got %v", err)
		}
	})
}
