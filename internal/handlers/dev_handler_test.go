package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spendsense/internal/database"
	"spendsense/internal/repositories"
	"spendsense/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	repo    repositories.TransactionRepositoryInterface
	handler *DevHandler
	userID  uuid.UUID
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewTransactionRepository(s.db.DB)
	s.userID = uuid.New()

	s.handler = NewDevHandler(s.repo, services.NewTransactionGenerator(42))
}

func (s *DevHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *DevHandlerTestSuite) TestSeedDemoData() {
	c, rec := s.newContext("/dev/seed?months=2&count=10")

	s.NoError(s.handler.SeedDemoData(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Message string                 `json:"message"`
		Meta    map[string]interface{} `json:"meta"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("demo data seeded", resp.Message)
	// 10 expenses plus one salary per month.
	s.Equal(float64(22), resp.Meta["transactions_created"])
	s.Equal(float64(2), resp.Meta["months"])

	_, total, err := s.repo.GetByUserID(s.userID, 0, 1)
	s.NoError(err)
	s.Equal(int64(22), total)
}

func (s *DevHandlerTestSuite) TestSeedDemoData_ClampsParameters() {
	c, rec := s.newContext("/dev/seed?months=0&count=0")

	s.NoError(s.handler.SeedDemoData(c))
	s.Equal(http.StatusOK, rec.Code)

	_, total, err := s.repo.GetByUserID(s.userID, 0, 1)
	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *DevHandlerTestSuite) TestSeedDemoData_MissingAuth() {
	req := httptest.NewRequest(http.MethodPost, "/dev/seed", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.SeedDemoData(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
