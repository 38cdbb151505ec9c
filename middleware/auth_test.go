package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	r := gin.New()
	r.GET("/protected", Protect(db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CurrentUser(c).Email})
	})
	r.GET("/admin", Protect(db), AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return db, r
}

func bearerRequest(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestProtect(t *testing.T) {
	db, r := setupAuthTest(t)

	user := models.User{FirstName: "A", LastName: "B", Email: "a@x.com", PRN: "P1", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, bearerRequest("/protected", ""))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, bearerRequest("/protected", "not.a.jwt"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, bearerRequest("/protected", token))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@x.com")
	})

	t.Run("deleted user", func(t *testing.T) {
		ghost := models.User{FirstName: "G", LastName: "H", Email: "g@x.com", PRN: "P9", Role: models.RoleStudent}
		require.NoError(t, db.Create(&ghost).Error)
		ghostToken, err := utils.GenerateToken(ghost.ID)
		require.NoError(t, err)
		require.NoError(t, db.Delete(&ghost).Error)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, bearerRequest("/protected", ghostToken))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	db, r := setupAuthTest(t)

	student := models.User{FirstName: "S", LastName: "T", Email: "s@x.com", PRN: "P1", Role: models.RoleStudent}
	admin := models.User{FirstName: "A", LastName: "D", Email: "admin@x.com", PRN: "A1", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&student).Error)
	require.NoError(t, db.Create(&admin).Error)

	studentToken, err := utils.GenerateToken(student.ID)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(admin.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, bearerRequest("/admin", studentToken))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, bearerRequest("/admin", adminToken))
	assert.Equal(t, http.StatusOK, w.Code)
}
