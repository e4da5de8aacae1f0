package post

import (
	"time"

	"github.com/gofrs/uuid"
	"minisocial/internal/core/user"
)

type Post struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	User      user.User `gorm:"foreignkey:UserID"`
	Content   string    `gorm:"type:text;not null"`
	ImagePath *string   // relative path under the static dir, nil when no image
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
