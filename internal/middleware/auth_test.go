package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spendsense/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	echo       *echo.Echo
	authConfig config.AuthConfig
	userID     uuid.UUID
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.echo = echo.New()
	s.authConfig = config.AuthConfig{
		SigningKey: "test-signing-key-for-auth-middleware",
		Issuer:     "spendsense-test",
	}
	s.userID = uuid.New()
}

func (s *AuthMiddlewareTestSuite) signToken(claims jwt.RegisteredClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.authConfig.SigningKey))
	s.Require().NoError(err)
	return signed
}

func (s *AuthMiddlewareTestSuite) validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   s.userID.String(),
		Issuer:    s.authConfig.Issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func (s *AuthMiddlewareTestSuite) invoke(authHeader string) (*httptest.ResponseRecorder, bool) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	reached := false
	handler := RequireAuth(s.authConfig)(func(c echo.Context) error {
		reached = true
		s.Equal(s.userID, c.Get("user_id"))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	return rec, reached
}

func (s *AuthMiddlewareTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	code, _ := body["error"]["code"].(string)
	return code
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_ValidToken() {
	rec, reached := s.invoke("Bearer " + s.signToken(s.validClaims()))

	s.True(reached)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_MissingHeader() {
	rec, reached := s.invoke("")

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_MalformedHeader() {
	rec, reached := s.invoke("NotBearer token")

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_ExpiredToken() {
	claims := s.validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	rec, reached := s.invoke("Bearer " + s.signToken(claims))

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_WrongIssuer() {
	claims := s.validClaims()
	claims.Issuer = "someone-else"

	rec, reached := s.invoke("Bearer " + s.signToken(claims))

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_WrongSigningKey() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, s.validClaims())
	signed, err := token.SignedString([]byte("a-different-key-entirely-here"))
	s.Require().NoError(err)

	rec, reached := s.invoke("Bearer " + signed)

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_NonUUIDSubject() {
	claims := s.validClaims()
	claims.Subject = "not-a-uuid"

	rec, reached := s.invoke("Bearer " + s.signToken(claims))

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
