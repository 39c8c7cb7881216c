package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomClaims_HasClient(t *testing.T) {
	var missing *CustomClaims
	assert.False(t, missing.HasClient())
	assert.False(t, (&CustomClaims{}).HasClient())
	assert.False(t, (&CustomClaims{ClientID: -4}).HasClient())
	assert.True(t, (&CustomClaims{ClientID: 1001}).HasClient())
}
