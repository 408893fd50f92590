package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SHAIK-RUMEENA/PostBloging/models"
)

// setupTempDir runs the test in a scratch directory so the sqlite fallback
// file does not land in the repository, and closes the connection afterwards.
func setupTempDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))

	t.Cleanup(func() {
		if DB != nil {
			if sqlDB, err := DB.DB(); err == nil {
				_ = sqlDB.Close()
			}
			DB = nil
		}
		_ = os.Chdir(wd)
	})
}

func TestInitDB_UnreachablePostgresFallsBackToSqlite(t *testing.T) {
	setupTempDir(t)
	t.Setenv("DB_URL", "host=127.0.0.1 port=1 user=postblog password=postblog dbname=postblog sslmode=disable")

	InitDB()

	require.NotNil(t, DB)
	assert.Equal(t, "sqlite", DB.Dialector.Name())

	_, err := os.Stat("postblog.db")
	assert.NoError(t, err)

	post := models.Post{Title: "Offline", Author: "Amy", Content: "Works without Postgres"}
	require.NoError(t, DB.Create(&post).Error)

	var got models.Post
	require.NoError(t, DB.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, "Offline", got.Title)
}

func TestInitDB_WithoutURLUsesSqlite(t *testing.T) {
	setupTempDir(t)
	t.Setenv("DB_URL", "")

	InitDB()

	require.NotNil(t, DB)
	assert.Equal(t, "sqlite", DB.Dialector.Name())
}
