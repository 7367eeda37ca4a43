package storage

import (
	"testing"
	"time"

	"remcua-backend/config"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	name := ObjectName(KindImage, "rem-phong-khach.JPG", now)
	assert.Regexp(t, `^images/2026/03/[0-9a-f-]{36}\.jpg$`, name)

	name = ObjectName(KindVideo, "clip.mp4", now)
	assert.Regexp(t, `^videos/2026/03/[0-9a-f-]{36}\.mp4$`, name)

	// Extension falls back to .jpg when missing
	name = ObjectName(KindImage, "noext", now)
	assert.Regexp(t, `\.jpg$`, name)
}

func TestPublicURL(t *testing.T) {
	config.PUBLIC_MEDIA_URL = "https://media.remcua.vn/"
	assert.Equal(t,
		"https://media.remcua.vn/media/images/2026/03/x.jpg",
		PublicURL("media", "images/2026/03/x.jpg"))

	config.PUBLIC_MEDIA_URL = "http://localhost:9000"
	assert.Equal(t,
		"http://localhost:9000/media/images/2026/03/x.jpg",
		PublicURL("media", "images/2026/03/x.jpg"))
}
