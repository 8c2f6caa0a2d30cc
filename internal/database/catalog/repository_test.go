package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/loncotes/library/internal/config"
	"github.com/loncotes/library/internal/database"
	"github.com/loncotes/library/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	db, err := database.NewDatabase(config.Database{
		DSN:      filepath.Join(t.TempDir(), "catalog.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB), db.DB
}

func TestRepository_ListMaterialTypes(t *testing.T) {
	repo, db := setupTestDB(t)

	types, err := repo.ListMaterialTypes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, types)

	require.NoError(t, db.Create(&entities.MaterialType{Name: "Book", CheckoutDays: 14}).Error)
	require.NoError(t, db.Create(&entities.MaterialType{Name: "Periodical", CheckoutDays: 7}).Error)

	types, err = repo.ListMaterialTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Book", types[0].Name)
	assert.Equal(t, 14, types[0].CheckoutDays)
	assert.Equal(t, "Periodical", types[1].Name)
	assert.Equal(t, 7, types[1].CheckoutDays)
}

func TestRepository_ListGenres(t *testing.T) {
	repo, db := setupTestDB(t)

	for _, name := range []string{"Mystery", "Poetry", "History"} {
		require.NoError(t, db.Create(&entities.Genre{Name: name}).Error)
	}

	genres, err := repo.ListGenres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.Equal(t, "Mystery", genres[0].Name)
	assert.Equal(t, "History", genres[2].Name)
}
