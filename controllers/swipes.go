package controllers

import (
	"Friender/services/swipes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type likeRequest struct {
	UserSwiping    string `json:"user_swiping" binding:"required"`
	UserBeingLiked string `json:"user_being_liked" binding:"required"`
}

type dislikeRequest struct {
	UserSwiping       string `json:"user_swiping" binding:"required"`
	UserBeingDisliked string `json:"user_being_disliked" binding:"required"`
}

// @Summary Like a card
// @Description Records a swipe-right from one user to another
// @Tags swipes
// @Accept json
// @Produce json
// @Param body body object{user_swiping=string,user_being_liked=string} true "Swipe"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /like [post]
func LikeUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req likeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing or malformed swipe fields"})
			return
		}

		if err := swipes.Like(db, req.UserSwiping, req.UserBeingLiked); err != nil {
			if errors.Is(err, swipes.ErrUnknownUser) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error recording like"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "like recorded"})
	}
}

// @Summary Dislike a card
// @Description Records a swipe-left from one user to another
// @Tags swipes
// @Accept json
// @Produce json
// @Param body body object{user_swiping=string,user_being_disliked=string} true "Swipe"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /dislike [post]
func DislikeUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dislikeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing or malformed swipe fields"})
			return
		}

		if err := swipes.Dislike(db, req.UserSwiping, req.UserBeingDisliked); err != nil {
			if errors.Is(err, swipes.ErrUnknownUser) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error recording dislike"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "dislike recorded"})
	}
}

// @Summary List a user's likes
// @Description Returns every like edge where the given user swiped
// @Tags swipes
// @Produce json
// @Param username path string true "Swiping user"
// @Success 200 {array} object{user_swiping=string,user_being_liked=string}
// @Failure 500 {object} object{error=string}
// @Router /alllikes/{username} [get]
func AllLikes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		edges, err := swipes.LikesFor(db, c.Param("username"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching likes"})
			return
		}

		out := make([]gin.H, len(edges))
		for i := range edges {
			out[i] = edges[i].Serialize()
		}

		c.JSON(http.StatusOK, out)
	}
}

// @Summary List a user's dislikes
// @Description Returns every dislike edge where the given user swiped
// @Tags swipes
// @Produce json
// @Param username path string true "Swiping user"
// @Success 200 {array} object{user_swiping=string,user_being_disliked=string}
// @Failure 500 {object} object{error=string}
// @Router /alldislikes/{username} [get]
func AllDislikes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		edges, err := swipes.DislikesFor(db, c.Param("username"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching dislikes"})
			return
		}

		out := make([]gin.H, len(edges))
		for i := range edges {
			out[i] = edges[i].Serialize()
		}

		c.JSON(http.StatusOK, out)
	}
}

// @Summary List a user's matches
// @Description Returns the profiles that liked the given user back
// @Tags swipes
// @Produce json
// @Param username path string true "User"
// @Success 200 {array} object
// @Failure 500 {object} object{error=string}
// @Router /allmatches/{username} [get]
func AllMatches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		matched, err := swipes.MatchesFor(db, c.Param("username"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching matches"})
			return
		}

		out := make([]gin.H, len(matched))
		for i := range matched {
			out[i] = matched[i].Serialize()
		}

		c.JSON(http.StatusOK, out)
	}
}
