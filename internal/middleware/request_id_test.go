package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		s.NotEmpty(GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.NotEmpty(rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_PropagatesInboundTraceID() {
	inbound := "feed-batch-7c2c9f"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, inbound)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		s.Equal(inbound, GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.Equal(inbound, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestGetTraceID_MissingReturnsEmpty() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := s.echo.NewContext(req, httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}
