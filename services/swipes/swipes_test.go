package swipes_test

import (
	"path/filepath"
	"testing"

	models "Friender/models/postgres"
	"Friender/services/swipes"
	"Friender/services/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(models.User{}, models.Like{}, models.Dislike{}))
	return db
}

func seedUsers(t *testing.T, db *gorm.DB, usernames ...string) {
	t.Helper()
	for _, name := range usernames {
		_, err := users.Signup(db, name, name+"@x.com", "pw1", "First", "Last")
		require.NoError(t, err)
	}
}

func TestLike(t *testing.T) {
	db := openTestDB(t)
	seedUsers(t, db, "ann", "bob")

	t.Run("Recorded edge shows up for the swiper", func(t *testing.T) {
		require.NoError(t, swipes.Like(db, "ann", "bob"))

		edges, err := swipes.LikesFor(db, "ann")
		require.NoError(t, err)
		require.Len(t, edges, 1)
		assert.Equal(t, "ann", edges[0].UserSwiping)
		assert.Equal(t, "bob", edges[0].UserBeingLiked)

		// Not visible from the target's side
		edges, err = swipes.LikesFor(db, "bob")
		require.NoError(t, err)
		assert.Empty(t, edges)
	})

	t.Run("Re-swiping the same pair is a no-op", func(t *testing.T) {
		require.NoError(t, swipes.Like(db, "ann", "bob"))

		edges, err := swipes.LikesFor(db, "ann")
		require.NoError(t, err)
		assert.Len(t, edges, 1)
	})

	t.Run("Unknown endpoint is rejected", func(t *testing.T) {
		assert.ErrorIs(t, swipes.Like(db, "ann", "nobody"), swipes.ErrUnknownUser)
		assert.ErrorIs(t, swipes.Like(db, "nobody", "ann"), swipes.ErrUnknownUser)
	})

	t.Run("Self-swipe is allowed", func(t *testing.T) {
		require.NoError(t, swipes.Like(db, "ann", "ann"))
	})
}

func TestDislike(t *testing.T) {
	db := openTestDB(t)
	seedUsers(t, db, "ann", "bob")

	require.NoError(t, swipes.Dislike(db, "ann", "bob"))
	require.NoError(t, swipes.Dislike(db, "ann", "bob"))

	edges, err := swipes.DislikesFor(db, "ann")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "bob", edges[0].UserBeingDisliked)

	// Dislikes live in their own relation
	likes, err := swipes.LikesFor(db, "ann")
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestMatchesFor(t *testing.T) {
	db := openTestDB(t)
	seedUsers(t, db, "ann", "bob", "cam")

	require.NoError(t, swipes.Like(db, "ann", "bob"))
	require.NoError(t, swipes.Like(db, "ann", "cam"))

	t.Run("One-sided like is not a match", func(t *testing.T) {
		matched, err := swipes.MatchesFor(db, "ann")
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("Mutual likes match both ways", func(t *testing.T) {
		require.NoError(t, swipes.Like(db, "bob", "ann"))

		matched, err := swipes.MatchesFor(db, "ann")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "bob", matched[0].Username)

		matched, err = swipes.MatchesFor(db, "bob")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "ann", matched[0].Username)
	})

	t.Run("Dislike back is not a match", func(t *testing.T) {
		require.NoError(t, swipes.Dislike(db, "cam", "ann"))

		matched, err := swipes.MatchesFor(db, "ann")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "bob", matched[0].Username)
	})
}
