package postgres_test

import (
	"path/filepath"
	"testing"

	models "Friender/models/postgres"

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

func TestSerializeDefaults(t *testing.T) {
	u := models.User{
		ID:        7,
		Username:  "ann",
		Email:     "ann@x.com",
		Password:  "$2a$10$secretdigest",
		Firstname: "Ann",
		Lastname:  "A",
		ImageURL:  models.DefaultImageURL,
	}

	view := u.Serialize()

	assert.Equal(t, "", view["location"])
	assert.Equal(t, "", view["hobbies"])
	assert.Equal(t, "", view["interests"])
	assert.Equal(t, 0, view["friendradius"])
	assert.Equal(t, models.DefaultImageURL, view["image_url"])

	// The digest and the surrogate key never leave the server
	assert.NotContains(t, view, "password")
	assert.NotContains(t, view, "id")
}

func TestUniqueConstraints(t *testing.T) {
	db := openTestDB(t)

	first := models.User{Username: "ann", Email: "ann@x.com", Password: "x", Firstname: "Ann", Lastname: "A"}
	require.NoError(t, db.Create(&first).Error)

	sameUsername := models.User{Username: "ann", Email: "other@x.com", Password: "x", Firstname: "Ann", Lastname: "A"}
	assert.ErrorIs(t, db.Create(&sameUsername).Error, gorm.ErrDuplicatedKey)

	sameEmail := models.User{Username: "ann2", Email: "ann@x.com", Password: "x", Firstname: "Ann", Lastname: "A"}
	assert.ErrorIs(t, db.Create(&sameEmail).Error, gorm.ErrDuplicatedKey)
}

func TestEdgeConstraints(t *testing.T) {
	db := openTestDB(t)

	ann := models.User{Username: "ann", Email: "ann@x.com", Password: "x", Firstname: "Ann", Lastname: "A"}
	bob := models.User{Username: "bob", Email: "bob@x.com", Password: "x", Firstname: "Bob", Lastname: "B"}
	require.NoError(t, db.Create(&ann).Error)
	require.NoError(t, db.Create(&bob).Error)

	t.Run("Composite primary key rejects second row", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Like{UserSwiping: "ann", UserBeingLiked: "bob"}).Error)
		err := db.Create(&models.Like{UserSwiping: "ann", UserBeingLiked: "bob"}).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("Edges need existing users", func(t *testing.T) {
		err := db.Create(&models.Dislike{UserSwiping: "ann", UserBeingDisliked: "nobody"}).Error
		assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	})

	t.Run("Deleting a user cascades its edges", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Like{UserSwiping: "bob", UserBeingLiked: "ann"}).Error)
		require.NoError(t, db.Delete(&bob).Error)

		var count int64
		require.NoError(t, db.Model(&models.Like{}).Where("user_swiping = ?", "bob").Count(&count).Error)
		assert.Zero(t, count)
	})
}
