package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"transaction-reports/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	withValidator := echo.New()
	withValidator.Validator = NewValidator()

	for name, e := range map[string]*echo.Echo{"registered": withValidator, "fallback": echo.New()} {
		t.Run(name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

			assert.NoError(t, validateRequest(c, &dto.TransactionQueryRequest{Months: "2025-01,2025-02"}))
			assert.Error(t, validateRequest(c, &dto.TransactionQueryRequest{Months: "2025-13"}))
		})
	}
}
