package search_ser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuery(t *testing.T) {
	assert.Equal(t, "golang", FormatQuery("golang"))
	assert.Equal(t, "golang & web", FormatQuery("golang web"))
	assert.Equal(t, "golang & web", FormatQuery("  golang   web  "))
	assert.Equal(t, "", FormatQuery(""))
	assert.Equal(t, "", FormatQuery("   "))
}
