package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Riddle is a filled question/answer template. Subject and Predicate are
// lexemes; VerbPhrase is the predicate after grammatical normalization.
type Riddle struct {
	Subject    string
	Predicate  string
	VerbPhrase string
	Homophone  string
	Modifier   string
	Compound   Compound
}

// Question renders "What do you call a <subject> that <verb phrase>?".
func (r Riddle) Question() string {
	return fmt.Sprintf("What do you call a %s that %s?", DisplayLexeme(r.Subject), r.VerbPhrase)
}

// Punchline is the pun itself: the homophone followed by the compound's modifier.
func (r Riddle) Punchline() string {
	return DisplayLexeme(r.Homophone + " " + r.Modifier)
}

// Answer renders "A <homophone> <modifier>!".
func (r Riddle) Answer() string {
	return fmt.Sprintf("A %s!", r.Punchline())
}

// String renders question and answer on one line.
func (r Riddle) String() string {
	return r.Question() + " " + r.Answer()
}

// PunRecord is the exported (theme, question, answer) triple.
type PunRecord struct {
	ID        uuid.UUID
	RunID     uuid.UUID
	Theme     string
	Question  string
	Answer    string
	CreatedAt time.Time
}

// NewPunRecord builds a record for a generated riddle. Answer holds the
// punchline without the "A ... !" framing, matching the dataset layout.
func NewPunRecord(runID uuid.UUID, theme string, r Riddle, now time.Time) PunRecord {
	return PunRecord{
		ID:        uuid.New(),
		RunID:     runID,
		Theme:     theme,
		Question:  r.Question(),
		Answer:    r.Punchline(),
		CreatedAt: now,
	}
}

// Validate reports every empty field of the record.
func (p PunRecord) Validate() error {
	var errs []FieldError
	if p.RunID == uuid.Nil {
		errs = append(errs, FieldError{Field: "run_id", Message: "required"})
	}
	if p.Theme == "" {
		errs = append(errs, FieldError{Field: "theme", Message: "required"})
	}
	if p.Question == "" {
		errs = append(errs, FieldError{Field: "question", Message: "required"})
	}
	if p.Answer == "" {
		errs = append(errs, FieldError{Field: "answer", Message: "required"})
	}
	if len(errs) == 0 {
		return nil
	}
	return NewValidationErrors(errs)
}
