package handlers

import (
	"github.com/labstack/echo/v4"
)

const (
	// ClientIDContextKey holds the authenticated client id set by the auth middleware
	ClientIDContextKey = "client_id"
	// ClientNameContextKey holds the authenticated client name set by the auth middleware
	ClientNameContextKey = "client_name"
)

// getClientIDFromContext extracts the client id placed in the context by the auth middleware.
// Returns false if the value is not set or not a positive int64.
func getClientIDFromContext(c echo.Context) (int64, bool) {
	clientID, ok := c.Get(ClientIDContextKey).(int64)
	if !ok || clientID <= 0 {
		return 0, false
	}
	return clientID, true
}

func getClientNameFromContext(c echo.Context) string {
	name, ok := c.Get(ClientNameContextKey).(string)
	if !ok {
		return ""
	}
	return name
}
