package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is implemented by every persisted entity through Base.
type Document interface {
	GetID() string
	GetCreatedAt() time.Time
	Stamp(now time.Time)
}

// Base holds the server-assigned identity shared by all entities.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" bson:"_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" bson:"created_at"`
}

func (b *Base) GetID() string {
	return b.ID
}

func (b *Base) GetCreatedAt() time.Time {
	return b.CreatedAt
}

// Stamp assigns a random id and the creation time when they are unset.
func (b *Base) Stamp(now time.Time) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now.UTC()
	}
}
