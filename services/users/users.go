package users

import (
	models "Friender/models/postgres"
	"Friender/services/credentials"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateIdentity means the username or email is already taken.
	ErrDuplicateIdentity = errors.New("username or email already exist")
	// ErrAuthenticationFailed covers both unknown username and wrong
	// password; callers must not be able to tell which one it was.
	ErrAuthenticationFailed = errors.New("incorrect username/password")
	// ErrUserNotFound means the update target does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Signup hashes the password and inserts the new account. Uniqueness is
// not pre-checked: a concurrent signup with the same username or email is
// only detected when the store rejects the insert.
func Signup(db *gorm.DB, username, email, password, firstname, lastname string) (*models.User, error) {
	digest, err := credentials.Hash(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  username,
		Email:     email,
		Password:  digest,
		Firstname: firstname,
		Lastname:  lastname,
		ImageURL:  models.DefaultImageURL,
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate looks the account up by username and compares the password
// against the stored digest.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrAuthenticationFailed
	}

	if !credentials.Verify(user.Password, password) {
		return nil, ErrAuthenticationFailed
	}
	return &user, nil
}

// Update replaces every mutable profile field of the account identified by
// username. The id, the username and the password digest are left as they
// are. Callers must have authenticated the user before calling this.
func Update(db *gorm.DB, username, firstname, lastname, email, location, hobbies, interests string, friendradius int, imageURL string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Firstname = firstname
	user.Lastname = lastname
	user.Email = email
	user.Location = location
	user.Hobbies = hobbies
	user.Interests = interests
	user.Friendradius = friendradius
	user.ImageURL = imageURL

	if err := db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns the account with the given username.
func FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListAll returns every account in natural storage order.
func ListAll(db *gorm.DB) ([]models.User, error) {
	var all []models.User
	if err := db.Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}
