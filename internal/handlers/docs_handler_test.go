package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DocsHandlerSuite struct {
	suite.Suite
	handler *DocsHandler
	e       *echo.Echo
}

func TestDocsHandler(t *testing.T) {
	suite.Run(t, new(DocsHandlerSuite))
}

func (s *DocsHandlerSuite) SetupTest() {
	s.handler = NewDocsHandler()
	s.e = echo.New()
}

func (s *DocsHandlerSuite) serve(handler *DocsHandler, ifNoneMatch string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil)
	if ifNoneMatch != "" {
		req.Header.Set("If-None-Match", ifNoneMatch)
	}
	rec := httptest.NewRecorder()
	rec.Header().Set("Cache-Control", "no-store")
	rec.Header().Set("Pragma", "no-cache")

	s.Require().NoError(handler.ServeOpenAPI(s.e.NewContext(req, rec)))
	return rec
}

func (s *DocsHandlerSuite) TestServeOpenAPI() {
	rec := s.serve(s.handler, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	s.Equal("public, max-age=300", rec.Header().Get("Cache-Control"))
	s.Empty(rec.Header().Get("Pragma"))
	s.NotEmpty(rec.Header().Get("ETag"))

	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	s.Equal("3.0.3", doc.OpenAPI)
	s.Contains(doc.Paths, "/api/transaction/get-transactions")
	s.Contains(doc.Paths, "/api/transaction/transaction-report")
}

func (s *DocsHandlerSuite) TestServeOpenAPI_NotModified() {
	etag := s.serve(s.handler, "").Header().Get("ETag")

	rec := s.serve(s.handler, etag)

	s.Equal(http.StatusNotModified, rec.Code)
	s.Empty(rec.Body.Bytes())
}

func (s *DocsHandlerSuite) TestServeOpenAPI_StaleETag() {
	rec := s.serve(s.handler, `"stale"`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DocsHandlerSuite) TestServeOpenAPI_MissingDocument() {
	rec := s.serve(newDocsHandler(nil), "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_004")
	s.Equal("no-store", rec.Header().Get("Cache-Control"))
}

func (s *DocsHandlerSuite) TestGenerateETag() {
	s.Empty(generateETag(nil))
	s.Equal(generateETag([]byte("a")), generateETag([]byte("a")))
	s.NotEqual(generateETag([]byte("a")), generateETag([]byte("b")))
}
