package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewSubjectType identifies what kind of subject a review targets.
type ReviewSubjectType string

const (
	ReviewSubjectListing  ReviewSubjectType = "listing"
	ReviewSubjectProvider ReviewSubjectType = "provider"
)

// Review is a multi-criteria review of a listing or provider.
//
// One review per (author, subject) pair: submitting again edits the
// existing review in place rather than creating a duplicate.
type Review struct {
	ID              uuid.UUID         `json:"id"`
	AuthorID        uuid.UUID         `json:"author_id"`
	SubjectID       uuid.UUID         `json:"subject_id"`
	SubjectType     ReviewSubjectType `json:"subject_type"`
	Rating          int               `json:"rating"` // 1..5 overall.
	Text            string            `json:"text,omitempty"`
	IsMustVisit     bool              `json:"is_must_visit"`
	IsHiddenGem     bool              `json:"is_hidden_gem"`
	CriteriaRatings map[string]int    `json:"criteria_ratings,omitempty"` // criterion id -> 1..10.
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
