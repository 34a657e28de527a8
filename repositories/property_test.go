package repositories

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nusava/nusava-backend/database"
	"github.com/nusava/nusava-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestImageRowsFirstIsPrimary(t *testing.T) {
	rows := imageRows("prop-1", []string{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg"})

	require.Len(t, rows, 3)
	assert.True(t, rows[0].IsPrimary)
	assert.False(t, rows[1].IsPrimary)
	assert.False(t, rows[2].IsPrimary)

	primaries := 0
	for _, row := range rows {
		assert.Equal(t, "prop-1", row.PropertyID)
		if row.IsPrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestImageRowsPreservesUploadOrder(t *testing.T) {
	urls := []string{"/uploads/front.jpg", "/uploads/pool.jpg"}
	rows := imageRows("prop-1", urls)

	require.Len(t, rows, 2)
	assert.Equal(t, urls[0], rows[0].URL)
	assert.Equal(t, urls[1], rows[1].URL)
}

func TestImageRowsEmpty(t *testing.T) {
	assert.Empty(t, imageRows("prop-1", nil))
	assert.Empty(t, imageRows("prop-1", []string{}))
}

// mockDB points database.DB at a sqlmock connection and records every SQL
// statement the repository issues.
func mockDB(t *testing.T) (sqlmock.Sqlmock, *[]string) {
	t.Helper()

	captured := &[]string{}
	recorder := sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		*captured = append(*captured, actualSQL)
		return nil
	})

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(recorder))
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	previous := database.DB
	database.DB = gormDB
	t.Cleanup(func() {
		database.DB = previous
		sqlDB.Close()
	})

	return mock, captured
}

func updateFixture() models.Property {
	return models.Property{
		ID:        "9f2b7c1e-1111-4222-8333-444455556666",
		Slug:      "modern-villa",
		Title:     "Modern Villa",
		Price:     250000,
		Type:      models.PropertyTypeVilla,
		Status:    models.PropertyStatusPublished,
		Address:   "Jl. Raya Ubud 1",
		City:      "Ubud",
		AgentID:   "1a2b3c4d-aaaa-4bbb-8ccc-ddddeeeeffff",
		ViewCount: 42,
	}
}

func TestUpdateOmitsViewCount(t *testing.T) {
	mock, captured := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("update properties").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	property := updateFixture()
	repo := NewPropertyRepository()
	require.NoError(t, repo.Update(&property, nil))
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, *captured, 1)
	update := (*captured)[0]
	assert.Contains(t, update, `UPDATE "properties"`)
	assert.NotContains(t, update, "view_count")
}

func TestUpdateNilImagesKeepsExistingSet(t *testing.T) {
	mock, captured := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("update properties").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	property := updateFixture()
	repo := NewPropertyRepository()
	require.NoError(t, repo.Update(&property, nil))
	require.NoError(t, mock.ExpectationsWereMet())

	for _, stmt := range *captured {
		assert.NotContains(t, stmt, "property_images")
	}
}

func TestUpdateReplacesFullImageSet(t *testing.T) {
	mock, captured := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("update properties").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("delete images").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("insert images").WillReturnRows(
		sqlmock.NewRows([]string{"id"}).AddRow("img-1").AddRow("img-2"))
	mock.ExpectCommit()

	property := updateFixture()
	repo := NewPropertyRepository()
	require.NoError(t, repo.Update(&property, []string{"/uploads/a.jpg", "/uploads/b.jpg"}))
	require.NoError(t, mock.ExpectationsWereMet())

	// The old set is deleted before the new one is inserted: a replace, not a merge
	deleteIdx, insertIdx := -1, -1
	for i, stmt := range *captured {
		if strings.Contains(stmt, `DELETE FROM "property_images"`) {
			deleteIdx = i
		}
		if strings.Contains(stmt, `INSERT INTO "property_images"`) {
			insertIdx = i
		}
	}
	require.GreaterOrEqual(t, deleteIdx, 0, "no delete over property_images issued")
	require.GreaterOrEqual(t, insertIdx, 0, "no insert into property_images issued")
	assert.Less(t, deleteIdx, insertIdx)
}
