package handlers_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bleck-backend/internal/api/handlers"
	"bleck-backend/internal/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	db    *gorm.DB
	sqlDB *sql.DB
	mock  sqlmock.Sqlmock
}

func (suite *HealthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	var err error
	suite.sqlDB, suite.mock, err = sqlmock.New(sqlmock.MonitorPingsOption(true))
	suite.Require().NoError(err)

	// GORM pings once while opening
	suite.mock.ExpectPing()

	dialector := postgres.New(postgres.Config{
		Conn:       suite.sqlDB,
		DriverName: "postgres",
	})
	suite.db, err = gorm.Open(dialector, &gorm.Config{})
	suite.Require().NoError(err)
}

func (suite *HealthHandlerTestSuite) TearDownTest() {
	if suite.sqlDB != nil {
		suite.sqlDB.Close()
	}
}

func (suite *HealthHandlerTestSuite) newRouter(handler *handlers.HealthHandler) *gin.Engine {
	r := gin.New()
	r.GET("/health", handler.Health)
	r.GET("/health/ready", handler.Ready)
	r.GET("/health/live", handler.Live)
	return r
}

func (suite *HealthHandlerTestSuite) serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (suite *HealthHandlerTestSuite) TestHealth_Success() {
	router := suite.newRouter(handlers.NewHealthHandler(suite.db, cache.NewInMemoryCache(time.Minute, time.Minute)))
	suite.mock.ExpectPing()

	w := suite.serve(router, "/health")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response handlers.HealthResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "healthy", response.Status)
	assert.Equal(suite.T(), handlers.Version, response.Version)
	assert.Equal(suite.T(), "healthy", response.Services["database"])
	assert.Equal(suite.T(), "healthy", response.Services["cache"])
	assert.NotZero(suite.T(), response.Timestamp)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *HealthHandlerTestSuite) TestHealth_DatabasePingFailure() {
	router := suite.newRouter(handlers.NewHealthHandler(suite.db, nil))
	suite.mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	w := suite.serve(router, "/health")

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
	var response handlers.HealthResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "unhealthy", response.Status)
	assert.Contains(suite.T(), response.Services["database"], "error:")
	assert.Contains(suite.T(), response.Services["database"], "connection refused")
	assert.NotContains(suite.T(), response.Services, "cache")
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *HealthHandlerTestSuite) TestHealth_ClosedDatabase() {
	closedSQLDB, closedMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	suite.Require().NoError(err)
	closedMock.ExpectPing()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: closedSQLDB, DriverName: "postgres"}), &gorm.Config{})
	suite.Require().NoError(err)
	closedSQLDB.Close()

	w := suite.serve(suite.newRouter(handlers.NewHealthHandler(gormDB, nil)), "/health")

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
	var response handlers.HealthResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(suite.T(), response.Services["database"], "error:")
}

func (suite *HealthHandlerTestSuite) TestReady_Success() {
	router := suite.newRouter(handlers.NewHealthHandler(suite.db, nil))
	suite.mock.ExpectPing()

	w := suite.serve(router, "/health/ready")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), true, response["ready"])
	assert.NotNil(suite.T(), response["timestamp"])
	services := response["services"].(map[string]interface{})
	assert.Equal(suite.T(), "ready", services["database"])
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *HealthHandlerTestSuite) TestReady_CacheUnavailable() {
	rc := cache.NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	suite.Require().NoError(rc.Close())

	router := suite.newRouter(handlers.NewHealthHandler(suite.db, rc))
	suite.mock.ExpectPing()

	w := suite.serve(router, "/health/ready")

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), false, response["ready"])
	services := response["services"].(map[string]interface{})
	assert.Equal(suite.T(), "ready", services["database"])
	assert.Contains(suite.T(), services["cache"], "not ready:")
}

func (suite *HealthHandlerTestSuite) TestReady_DatabaseNotReady() {
	router := suite.newRouter(handlers.NewHealthHandler(suite.db, nil))
	suite.mock.ExpectPing().WillReturnError(errors.New("database not ready"))

	w := suite.serve(router, "/health/ready")

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), false, response["ready"])
	services := response["services"].(map[string]interface{})
	assert.Contains(suite.T(), services["database"], "not ready:")
	assert.Contains(suite.T(), services["database"], "database not ready")
}

func (suite *HealthHandlerTestSuite) TestLive() {
	// liveness never touches the database
	w := suite.serve(suite.newRouter(handlers.NewHealthHandler(suite.db, nil)), "/health/live")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), true, response["alive"])
	_, err := time.Parse(time.RFC3339Nano, response["timestamp"].(string))
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
