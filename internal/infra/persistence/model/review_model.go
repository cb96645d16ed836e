package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The composite unique index keeps one review per author and subject;
// resubmission updates the existing row through an upsert.
type ReviewModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_on_author_subject"`
	SubjectID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_on_author_subject;index"`
	SubjectType     string    `gorm:"type:varchar(20);not null"`
	Rating          int       `gorm:"not null"`
	Text            string    `gorm:"type:text"`
	IsMustVisit     bool      `gorm:"not null;default:false"`
	IsHiddenGem     bool      `gorm:"not null;default:false"`
	CriteriaRatings IntMap    `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
