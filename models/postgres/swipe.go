package postgres

import (
	"github.com/gin-gonic/gin"
)

/*
 * 'Like' represents one swipe-right edge between two users. The composite
 * primary key guarantees at most one row per (swiper, target) pair.
 * Deleting a user removes every edge that references it.
 */
type Like struct {
	UserSwiping    string `gorm:"primaryKey;size:50"`
	UserBeingLiked string `gorm:"primaryKey;size:50"`

	// Relationships
	Swiper User `gorm:"foreignKey:UserSwiping;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Target User `gorm:"foreignKey:UserBeingLiked;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (l *Like) Serialize() gin.H {
	return gin.H{
		"user_swiping":     l.UserSwiping,
		"user_being_liked": l.UserBeingLiked,
	}
}

/*
 * 'Dislike' is the swipe-left counterpart, keyed the same way. The two
 * relations are kept disjoint instead of using a boolean column so that
 * each table matches one swipe direction.
 */
type Dislike struct {
	UserSwiping       string `gorm:"primaryKey;size:50"`
	UserBeingDisliked string `gorm:"primaryKey;size:50"`

	// Relationships
	Swiper User `gorm:"foreignKey:UserSwiping;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Target User `gorm:"foreignKey:UserBeingDisliked;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (d *Dislike) Serialize() gin.H {
	return gin.H{
		"user_swiping":        d.UserSwiping,
		"user_being_disliked": d.UserBeingDisliked,
	}
}
