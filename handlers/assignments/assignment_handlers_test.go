package assignments

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fiesta/database"
	"fiesta/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestCreateAssignmentTimestampUTC(t *testing.T) {
	setupTestDB(t)
	program := models.Program{ID: "p1", Name: "Solo Song", CandidateLimit: 1}
	require.NoError(t, database.DB.Create(&program).Error)
	jury := models.Jury{ID: "j1", Name: "Judge Judy", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&jury).Error)

	w := postJSON(t, CreateAssignment, `{"program_id":"p1","jury_id":"j1","stage":"Main"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var assignment models.Assignment
	require.NoError(t, database.DB.First(&assignment, "program_id = ?", "p1").Error)

	// stored in UTC like every other timestamp in the system
	assert.True(t, strings.HasSuffix(assignment.CreatedAt, "Z"), "expected UTC timestamp, got %q", assignment.CreatedAt)
	parsed, err := time.Parse(time.RFC3339, assignment.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestCreateAssignmentDuplicate(t *testing.T) {
	setupTestDB(t)
	program := models.Program{ID: "p1", Name: "Solo Song", CandidateLimit: 1}
	require.NoError(t, database.DB.Create(&program).Error)
	jury := models.Jury{ID: "j1", Name: "Judge Judy", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&jury).Error)

	w := postJSON(t, CreateAssignment, `{"program_id":"p1","jury_id":"j1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, CreateAssignment, `{"program_id":"p1","jury_id":"j1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAssignmentUnknownProgram(t *testing.T) {
	setupTestDB(t)
	jury := models.Jury{ID: "j1", Name: "Judge Judy", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&jury).Error)

	w := postJSON(t, CreateAssignment, `{"program_id":"nope","jury_id":"j1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
