package controllers

import (
	"Friender/middleware"
	"Friender/services/storage"
	"Friender/services/users"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type signupRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary Create a new account
// @Description Registers a user and returns the serialized profile
// @Tags users
// @Accept json
// @Produce json
// @Param body body object{username=string,password=string,email=string,firstname=string,lastname=string} true "New account"
// @Success 201 {object} object{user=object}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /signup [post]
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing or malformed signup fields"})
			return
		}

		user, err := users.Signup(db, req.Username, req.Email, req.Password, req.Firstname, req.Lastname)
		if err != nil {
			if errors.Is(err, users.ErrDuplicateIdentity) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": user.Serialize()})
	}
}

// @Summary Log in
// @Description Verifies the credentials and returns the profile plus a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param body body object{username=string,password=string} true "Credentials"
// @Success 200 {object} object{user=object,token=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing or malformed login fields"})
			return
		}

		user, err := users.Authenticate(db, req.Username, req.Password)
		if err != nil {
			// Same response for unknown username and wrong password
			c.JSON(http.StatusUnauthorized, gin.H{"error": users.ErrAuthenticationFailed.Error()})
			return
		}

		token, err := middleware.GenerateToken(user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}

		session := sessions.Default(c)
		session.Set("Username", user.Username)
		if err := session.Save(); err != nil {
			log.Printf("Error saving session for %s: %v", user.Username, err)
		}

		c.JSON(http.StatusOK, gin.H{"user": user.Serialize(), "token": token})
	}
}

// @Summary Update a profile
// @Description Authenticates, uploads the profile image to object storage and replaces the mutable profile fields
// @Tags users
// @Accept mpfd
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param email formData string true "Email"
// @Param firstname formData string true "First name"
// @Param lastname formData string true "Last name"
// @Param location formData string false "Location"
// @Param hobbies formData string false "Hobbies"
// @Param interests formData string false "Interests"
// @Param friendradius formData integer false "Friend radius"
// @Param image_url formData file true "Profile image"
// @Success 200 {object} object{user=object}
// @Failure 401 {object} object{error=string}
// @Failure 502 {object} object{error=string}
// @Router /profile [patch]
func UpdateProfile(db *gorm.DB, uploader storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")
		email := c.PostForm("email")
		firstname := c.PostForm("firstname")
		lastname := c.PostForm("lastname")

		if username == "" || password == "" || email == "" || firstname == "" || lastname == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing or malformed profile fields"})
			return
		}

		friendradius := 0
		if raw := c.PostForm("friendradius"); raw != "" {
			var err error
			friendradius, err = strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "friendradius must be an integer"})
				return
			}
		}

		// Authentication comes first; nothing is uploaded or written for
		// a caller that cannot prove the password.
		user, err := users.Authenticate(db, username, password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": users.ErrAuthenticationFailed.Error()})
			return
		}

		fileHeader, err := c.FormFile("image_url")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profile image file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read profile image"})
			return
		}
		defer file.Close()

		key := storage.ProfileImageKey(user.Username)
		imageURL, err := uploader.Upload(c.Request.Context(), key, file,
			fileHeader.Size, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			log.Printf("Error uploading profile image for %s: %v", user.Username, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not upload profile image"})
			return
		}

		updated, err := users.Update(db, user.Username, firstname, lastname, email,
			c.PostForm("location"), c.PostForm("hobbies"), c.PostForm("interests"),
			friendradius, imageURL)
		if err != nil {
			switch {
			case errors.Is(err, users.ErrDuplicateIdentity):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, users.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": updated.Serialize()})
	}
}

// @Summary List every card
// @Description Returns all user profiles for swiping
// @Tags users
// @Produce json
// @Success 200 {object} object{users=array}
// @Failure 500 {object} object{error=string}
// @Router /cards [get]
func ListCards(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := users.ListAll(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching users"})
			return
		}

		cards := make([]gin.H, len(all))
		for i := range all {
			cards[i] = all[i].Serialize()
		}

		c.JSON(http.StatusOK, gin.H{"users": cards})
	}
}

// @Summary Own profile
// @Description Returns the profile of the logged-in user
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{user=object}
// @Failure 401 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/me [get]
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		user, err := users.FindByUsername(db, username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user.Serialize()})
	}
}
