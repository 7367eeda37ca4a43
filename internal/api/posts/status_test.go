package posts

import (
	"testing"

	"remcua-backend/internal/domain/content"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	got, ok := normalizeStatus("")
	assert.True(t, ok)
	assert.Equal(t, content.PostDraft, got)

	got, ok = normalizeStatus("published")
	assert.True(t, ok)
	assert.Equal(t, content.PostPublished, got)

	_, ok = normalizeStatus("archived")
	assert.False(t, ok)
}
