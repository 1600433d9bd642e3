package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilter(t *testing.T) {
	assert.Equal(t, "", normalizeFilter(""))
	assert.Equal(t, "", normalizeFilter("   "))
	assert.Equal(t, "", normalizeFilter("\t\n"))
	assert.Equal(t, "Godfather", normalizeFilter("Godfather"))
	assert.Equal(t, " Godfather ", normalizeFilter(" Godfather "))
}
