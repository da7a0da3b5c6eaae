package store

import (
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"ieee-paper-app/internal/model"
)

func TestDraftPaperRoundTrip(t *testing.T) {
	d := Draft{Content: `{"title":"T","authors":[{"name":"J. Doe"}]}`}
	p, err := d.Paper()
	if err != nil {
		t.Fatalf("Paper: %v", err)
	}
	if p.Title != "T" {
		t.Errorf("title: got %q, want T", p.Title)
	}
	if len(p.Authors) != 1 || p.Authors[0].Name != "J. Doe" {
		t.Errorf("authors not decoded: %+v", p.Authors)
	}
}

func TestDraftPaperRejectsBrokenSnapshot(t *testing.T) {
	d := Draft{Content: `{"title":`}
	if _, err := d.Paper(); err == nil {
		t.Errorf("expected decode error for broken snapshot")
	}
}

func testStore(t *testing.T) *Store {
	t.Helper()
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		t.Skip("database not configured, set DB_HOST to run")
	}
	dsn := os.Getenv("DB_USERNAME") + ":" + os.Getenv("DB_PASSWORD") +
		"@tcp(" + dbHost + ":" + os.Getenv("DB_PORT") + ")/" + os.Getenv("DB_DATABASE")
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping database: %v", err)
	}
	return New(db)
}

func TestDraftLifecycle(t *testing.T) {
	s := testStore(t)

	paper := &model.Paper{Title: "Lifecycle", Authors: []model.Author{{Name: "J. Doe"}}}
	draft, err := s.SaveDraft(paper)
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if draft.Slug == "" {
		t.Fatal("saved draft has no slug")
	}
	defer func() {
		if err := s.DeleteDraft(draft.Slug); err != nil && !errors.Is(err, ErrDraftNotFound) {
			t.Errorf("cleanup: %v", err)
		}
	}()

	found, err := s.FindDraftBySlug(draft.Slug)
	if err != nil {
		t.Fatalf("FindDraftBySlug: %v", err)
	}
	if found.Title != "Lifecycle" {
		t.Errorf("title: got %q, want Lifecycle", found.Title)
	}

	paper.Title = "Lifecycle v2"
	updated, err := s.UpdateDraft(draft.Slug, paper)
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	if updated.Title != "Lifecycle v2" {
		t.Errorf("updated title: got %q, want Lifecycle v2", updated.Title)
	}

	if err := s.DeleteDraft(draft.Slug); err != nil {
		t.Fatalf("DeleteDraft: %v", err)
	}
	if _, err := s.FindDraftBySlug(draft.Slug); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound after delete, got %v", err)
	}
}

func TestFindDraftBySlugUnknown(t *testing.T) {
	s := testStore(t)
	if _, err := s.FindDraftBySlug("does-not-exist"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
}
