package like

import (
	"time"

	"github.com/gofrs/uuid"
	"minisocial/internal/core/post"
	"minisocial/internal/core/user"
)

// Like marks that a user liked a post. A user can like a given post at most
// once; the composite unique index is what makes the toggle race-safe.
type Like struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_post"`
	User      user.User `gorm:"foreignkey:UserID"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_post"`
	Post      post.Post `gorm:"foreignkey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
