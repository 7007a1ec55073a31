package db

import (
	"testing"
	"time"

	"github.com/terraincognita07/nutritrack/internal/models"
)

func TestSessionRepositorySaveReplacesAndDeletes(t *testing.T) {
	repo := NewSessionRepository(openTestDatabase(t))

	if err := repo.Save(&models.AppSession{SessionKey: "k1", UserID: "1", UserName: "Ana"}); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if err := repo.Save(&models.AppSession{SessionKey: "k1", UserID: "2", UserName: "Ben"}); err != nil {
		t.Fatalf("second Save() unexpected error: %v", err)
	}

	session, found, err := repo.Load("k1")
	if err != nil || !found {
		t.Fatalf("Load() found=%v err=%v", found, err)
	}
	if session.UserID != "2" || session.UserName != "Ben" {
		t.Fatalf("expected replaced identity 2/Ben, got %s/%s", session.UserID, session.UserName)
	}

	if err := repo.Delete("k1"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, found, err := repo.Load("k1"); err != nil || found {
		t.Fatalf("expected session to be gone, found=%v err=%v", found, err)
	}
}

func TestSessionRepositoryDeleteForUserKeepsCurrentSession(t *testing.T) {
	repo := NewSessionRepository(openTestDatabase(t))
	for _, session := range []models.AppSession{
		{SessionKey: "phone", UserID: "1", UserName: "Ana"},
		{SessionKey: "tablet", UserID: "1", UserName: "Ana"},
		{SessionKey: "laptop", UserID: "1", UserName: "Ana"},
		{SessionKey: "other", UserID: "2", UserName: "Ben"},
	} {
		session := session
		if err := repo.Save(&session); err != nil {
			t.Fatalf("Save(%s) unexpected error: %v", session.SessionKey, err)
		}
	}

	removed, err := repo.DeleteForUser("1", "phone")
	if err != nil || removed != 2 {
		t.Fatalf("DeleteForUser() = %d, %v, want 2", removed, err)
	}
	for key, want := range map[string]bool{"phone": true, "tablet": false, "laptop": false, "other": true} {
		if _, found, err := repo.Load(key); err != nil || found != want {
			t.Fatalf("Load(%s) found=%v err=%v, want found=%v", key, found, err, want)
		}
	}

	removed, err = repo.DeleteForUser("1", "")
	if err != nil || removed != 1 {
		t.Fatalf("DeleteForUser() without keep = %d, %v, want 1", removed, err)
	}
}

func TestSessionRepositoryDeleteUpdatedBefore(t *testing.T) {
	repo := NewSessionRepository(openTestDatabase(t))
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	for _, session := range []models.AppSession{
		{SessionKey: "stale", UserID: "1", UserName: "Ana", UpdatedAt: now.Add(-31 * 24 * time.Hour)},
		{SessionKey: "fresh", UserID: "1", UserName: "Ana", UpdatedAt: now.Add(-time.Hour)},
	} {
		session := session
		if err := repo.Save(&session); err != nil {
			t.Fatalf("Save(%s) unexpected error: %v", session.SessionKey, err)
		}
	}

	removed, err := repo.DeleteUpdatedBefore(now.Add(-30 * 24 * time.Hour))
	if err != nil || removed != 1 {
		t.Fatalf("DeleteUpdatedBefore() = %d, %v, want 1", removed, err)
	}
	if _, found, _ := repo.Load("stale"); found {
		t.Fatal("expected stale session to be removed")
	}
	if _, found, _ := repo.Load("fresh"); !found {
		t.Fatal("expected fresh session to remain")
	}
}
