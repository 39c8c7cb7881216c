package handlers

import (
	"crypto/md5"
	_ "embed"
	"fmt"
	"net/http"

	"transaction-reports/internal/errors"

	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openAPIDocument []byte

// DocsHandler serves the OpenAPI description of the transaction API
type DocsHandler struct {
	document []byte
	etag     string
}

// NewDocsHandler creates a handler for the embedded OpenAPI document
func NewDocsHandler() *DocsHandler {
	return newDocsHandler(openAPIDocument)
}

func newDocsHandler(document []byte) *DocsHandler {
	return &DocsHandler{
		document: document,
		etag:     generateETag(document),
	}
}

// ServeOpenAPI serves the OpenAPI document. Clients holding the current ETag get 304.
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	if len(h.document) == 0 {
		return SendError(c, errors.SystemNotFound, errors.WithDetails("API documentation is not available"))
	}

	header := c.Response().Header()
	header.Set("Cache-Control", "public, max-age=300")
	header.Del("Pragma")
	header.Del("Expires")
	header.Set("ETag", h.etag)
	if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.etag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, "application/json; charset=utf-8", h.document)
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
