package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMIMEGates(t *testing.T) {
	cases := []struct {
		contentType string
		image       bool
		media       bool
		document    bool
	}{
		{"image/png", true, true, false},
		{"image/gif", true, true, false},
		{"video/mp4", false, true, false},
		{"application/pdf", false, false, true},
		{"application/msword", false, false, true},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", false, false, true},
		{"text/html", false, false, false},
		{"application/octet-stream", false, false, false},
		{"", false, false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.image, ImageAllowed(tc.contentType), "ImageAllowed(%q)", tc.contentType)
		assert.Equal(t, tc.media, MediaAllowed(tc.contentType), "MediaAllowed(%q)", tc.contentType)
		assert.Equal(t, tc.document, DocumentAllowed(tc.contentType), "DocumentAllowed(%q)", tc.contentType)
	}
}

func TestResourceTypeFor(t *testing.T) {
	assert.Equal(t, "video", ResourceTypeFor("video/mp4"))
	assert.Equal(t, "image", ResourceTypeFor("image/gif"))
	assert.Equal(t, "image", ResourceTypeFor("image/png"))
}

func TestDownloadURL(t *testing.T) {
	url := downloadURL(
		"https://res.cloudinary.com/demo/raw/upload/v1700000000/portfolio/resumes/resume_x.pdf",
		"portfolio/resumes/resume_x.pdf",
	)
	assert.Equal(t,
		"https://res.cloudinary.com/demo/raw/upload/fl_attachment,fl_force_download/portfolio/resumes/resume_x.pdf",
		url)

	// A URL without the upload marker is returned untouched.
	assert.Equal(t, "https://example.com/x", downloadURL("https://example.com/x", "x"))
}
