package postgres

import (
	"github.com/gin-gonic/gin"
)

// DefaultImageURL is the placeholder picture every new account starts with.
const DefaultImageURL = "/static/images/default-pic.png"

/*
 * 'User' contains the blueprint definition of an account. Password holds
 * the bcrypt digest, never the plaintext.
 */
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:50;not null;uniqueIndex"`
	Email        string `gorm:"size:100;not null;uniqueIndex"`
	Password     string `gorm:"size:255;not null"`
	Firstname    string `gorm:"size:100;not null"`
	Lastname     string `gorm:"size:100;not null"`
	Location     string
	Hobbies      string
	Interests    string
	Friendradius int
	ImageURL     string `gorm:"column:image_url;default:'/static/images/default-pic.png'"`
}

// Serialize returns the flat view sent over the API. The id and the
// password digest never leave the server.
func (u *User) Serialize() gin.H {
	return gin.H{
		"username":     u.Username,
		"email":        u.Email,
		"firstname":    u.Firstname,
		"lastname":     u.Lastname,
		"location":     u.Location,
		"hobbies":      u.Hobbies,
		"interests":    u.Interests,
		"friendradius": u.Friendradius,
		"image_url":    u.ImageURL,
	}
}
