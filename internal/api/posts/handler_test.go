package posts

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"remcua-backend/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	prev := database.DB
	database.DB = gdb
	t.Cleanup(func() { database.DB = prev })
	return mock
}

func postPost(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	r := gin.New()
	r.POST("/posts", CreatePost)
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreatePostRespondsAfterCommit(t *testing.T) {
	mock := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("6f2c7a58-0000-0000-0000-000000000002"))
	mock.ExpectCommit()

	rr := postPost(t, gin.H{"title": "Chọn rèm cho phòng ngủ"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "chon-rem-cho-phong-ngu")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A rolled-back create must answer with the error alone, never a created id.
func TestCreatePostRollbackYieldsNoCreatedBody(t *testing.T) {
	mock := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "posts"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	rr := postPost(t, gin.H{"title": "Chọn rèm cho phòng ngủ"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "slug")
	assert.NoError(t, mock.ExpectationsWereMet())
}
