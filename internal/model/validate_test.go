package model

import (
	"errors"
	"strings"
	"testing"
)

func abstractOfWords(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestValidateAbstract(t *testing.T) {
	cases := []struct {
		words int
		want  bool
	}{
		{149, false},
		{150, true},
		{200, true},
		{250, true},
		{251, false},
		{0, false},
	}
	for _, c := range cases {
		got := ValidateAbstract(abstractOfWords(c.words))
		if got != c.want {
			t.Errorf("ValidateAbstract with %d words: got %v, want %v", c.words, got, c.want)
		}
	}
}

func TestValidateAbstractCountsWordsNotSpaces(t *testing.T) {
	// punctuation and repeated whitespace must not inflate the count
	text := strings.TrimSpace(strings.Repeat("alpha,  beta.\n", 75))
	if !ValidateAbstract(text) {
		t.Errorf("expected 150 words split across punctuation to validate")
	}
}

func TestValidateReference(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"[1] J. Doe, Some title, 2017", true},
		{"[23] Networked systems", true},
		{"J. Doe, Some title", false},
		{"[x] broken index", false},
		{"", false},
		{"[1]no space after index", false},
	}
	for _, c := range cases {
		got := ValidateReference(c.text)
		if got != c.want {
			t.Errorf("ValidateReference(%q): got %v, want %v", c.text, got, c.want)
		}
	}
}

func TestCheckRenderableMissingTitle(t *testing.T) {
	p := &Paper{Authors: []Author{{Name: "J. Doe"}}}
	err := CheckRenderable(p)
	var missing *MissingRequiredFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingRequiredFieldError, got %v", err)
	}
	if missing.Field != "title" {
		t.Errorf("field: got %q, want %q", missing.Field, "title")
	}
}

func TestCheckRenderableMissingAuthorName(t *testing.T) {
	p := &Paper{Title: "T", Authors: []Author{{Name: ""}, {Name: ""}}}
	err := CheckRenderable(p)
	var missing *MissingRequiredFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingRequiredFieldError, got %v", err)
	}
	if missing.Field != "author name" {
		t.Errorf("field: got %q, want %q", missing.Field, "author name")
	}
	if missing.Error() != "missing required field: author name" {
		t.Errorf("unexpected error message: %q", missing.Error())
	}
}

func TestCheckRenderableOK(t *testing.T) {
	p := &Paper{Title: "T", Authors: []Author{{Name: ""}, {Name: "J. Doe"}}}
	if err := CheckRenderable(p); err != nil {
		t.Errorf("expected renderable paper, got %v", err)
	}
}
