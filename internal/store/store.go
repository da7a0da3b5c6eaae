package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/uniplaces/carbon"

	"ieee-paper-app/internal/helpers"
	"ieee-paper-app/internal/model"
)

// Store is the concrete implementation of the draft repository on MySQL.
type Store struct {
	db *sql.DB
}

// Draft is one saved paper snapshot. Content holds the full paper content
// model as JSON so the form can round-trip drafts without a schema migration
// every time the model grows a field.
type Draft struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Paper decodes the stored snapshot back into the content model.
func (d Draft) Paper() (*model.Paper, error) {
	var p model.Paper
	if err := json.Unmarshal([]byte(d.Content), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// New creates a new Store instance
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetDB returns the underlying sql.DB instance
func (store *Store) GetDB() *sql.DB {
	return store.db
}

// SaveDraft stores a new snapshot under a fresh random slug.
func (store *Store) SaveDraft(p *model.Paper) (Draft, error) {
	content, err := json.Marshal(p)
	if err != nil {
		return Draft{}, err
	}

	slug := helpers.GenerateRandomString(14)

	_, err = store.db.Exec("INSERT INTO drafts (slug, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		slug, p.Title, string(content), carbon.Now().DateTimeString(), carbon.Now().DateTimeString())
	if err != nil {
		return Draft{}, err
	}

	return store.FindDraftBySlug(slug)
}

// ErrDraftNotFound is returned when a slug does not match any saved draft.
var ErrDraftNotFound = errors.New("draft not found")

func (store *Store) FindDraftBySlug(slug string) (Draft, error) {
	var draft Draft
	err := store.db.QueryRow("SELECT id, slug, title, content, created_at, updated_at FROM drafts WHERE slug = ?", slug).
		Scan(&draft.ID, &draft.Slug, &draft.Title, &draft.Content, &draft.CreatedAt, &draft.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return Draft{}, err
	}

	return draft, nil
}

// UpdateDraft replaces the snapshot stored under slug.
func (store *Store) UpdateDraft(slug string, p *model.Paper) (Draft, error) {
	content, err := json.Marshal(p)
	if err != nil {
		return Draft{}, err
	}

	_, err = store.db.Exec("UPDATE drafts SET title = ?, content = ?, updated_at = ? WHERE slug = ?",
		p.Title, string(content), carbon.Now().DateTimeString(), slug)
	if err != nil {
		return Draft{}, err
	}

	// RowsAffected is zero both for a missing slug and for an identical
	// snapshot, so re-read instead of inspecting it.
	return store.FindDraftBySlug(slug)
}

func (store *Store) DeleteDraft(slug string) error {
	result, err := store.db.Exec("DELETE FROM drafts WHERE slug = ?", slug)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// ListDrafts returns every saved draft without its content payload, newest
// first.
func (store *Store) ListDrafts() ([]Draft, error) {
	var drafts []Draft

	rows, err := store.db.Query("SELECT id, slug, title, created_at, updated_at FROM drafts ORDER BY updated_at DESC")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Println("Error closing drafts rows:", err)
		}
	}()

	for rows.Next() {
		var draft Draft
		err = rows.Scan(&draft.ID, &draft.Slug, &draft.Title, &draft.CreatedAt, &draft.UpdatedAt)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}

	return drafts, rows.Err()
}
