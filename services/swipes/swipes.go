package swipes

import (
	models "Friender/models/postgres"
	"errors"

	"gorm.io/gorm"
)

// ErrUnknownUser means one of the swipe's endpoints does not reference an
// existing account (foreign key violation).
var ErrUnknownUser = errors.New("swipe references an unknown user")

// Like records a swipe-right edge from actor to target. Re-issuing the
// same swipe hits the composite primary key and is treated as a no-op.
// There is no self-swipe guard.
func Like(db *gorm.DB, actor, target string) error {
	edge := models.Like{
		UserSwiping:    actor,
		UserBeingLiked: target,
	}
	return insertEdge(db.Create(&edge).Error)
}

// Dislike records a swipe-left edge from actor to target.
func Dislike(db *gorm.DB, actor, target string) error {
	edge := models.Dislike{
		UserSwiping:       actor,
		UserBeingDisliked: target,
	}
	return insertEdge(db.Create(&edge).Error)
}

func insertEdge(err error) error {
	if err == nil || errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrUnknownUser
	}
	return err
}

// LikesFor returns every like edge where the given user is the swiper.
func LikesFor(db *gorm.DB, username string) ([]models.Like, error) {
	var edges []models.Like
	if err := db.Where("user_swiping = ?", username).Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// DislikesFor returns every dislike edge where the given user is the swiper.
func DislikesFor(db *gorm.DB, username string) ([]models.Dislike, error) {
	var edges []models.Dislike
	if err := db.Where("user_swiping = ?", username).Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// MatchesFor returns the users that username liked and that liked username
// back. Derived from the likes relation alone, nothing is stored.
func MatchesFor(db *gorm.DB, username string) ([]models.User, error) {
	var matched []models.User
	err := db.
		Joins("JOIN likes outgoing ON outgoing.user_being_liked = users.username AND outgoing.user_swiping = ?", username).
		Joins("JOIN likes incoming ON incoming.user_swiping = users.username AND incoming.user_being_liked = ?", username).
		Find(&matched).Error
	if err != nil {
		return nil, err
	}
	return matched, nil
}
