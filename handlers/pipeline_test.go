package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"portfolio/models"
	"portfolio/schema"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(t *testing.T, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func formContext(t *testing.T, fields map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func formContextWithFile(t *testing.T, fields map[string]string, fileField, fileName, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("file-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func TestProcessBodyStrictNamesMissingField(t *testing.T) {
	c, w := jsonContext(t, map[string]any{
		"category": "frontend",
		"level":    "expert",
	})

	_, ok := processBody(c, models.SkillSchema, schema.Strict)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name")
}

func TestProcessBodyJSONAndFormAgree(t *testing.T) {
	jc, _ := jsonContext(t, map[string]any{
		"name":     "Go",
		"category": "backend",
		"level":    "expert",
		"order":    3,
		"isActive": true,
	})
	fc, _ := formContext(t, map[string]string{
		"name":     "Go",
		"category": "backend",
		"level":    "expert",
		"order":    "3",
		"isActive": "true",
	})

	fromJSON, ok := processBody(jc, models.SkillSchema, schema.Strict)
	require.True(t, ok)
	fromForm, ok := processBody(fc, models.SkillSchema, schema.Strict)
	require.True(t, ok)

	assert.Equal(t, fromJSON, fromForm)
}

func TestProcessBodyBracketNotationNests(t *testing.T) {
	c, _ := formContext(t, map[string]string{
		"personalInfo[name]":                 "Ada",
		"personalInfo[socialLinks][github]":  "https://github.com/ada",
		"personalInfo[socialLinks][twitter]": "https://twitter.com/ada",
	})

	doc, ok := processBody(c, models.ProfileSchema, schema.Partial)
	require.True(t, ok)

	info, ok := doc["personalInfo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", info["name"])

	links, ok := info["socialLinks"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://github.com/ada", links["github"])
	assert.Equal(t, "https://twitter.com/ada", links["twitter"])
}

func TestProcessBodyRejectsEnumViolation(t *testing.T) {
	c, w := jsonContext(t, map[string]any{
		"name":     "Go",
		"category": "Backend",
		"level":    "expert",
	})

	_, ok := processBody(c, models.SkillSchema, schema.Strict)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "category")
}

func TestProcessBodySuppliedSatisfiesRequired(t *testing.T) {
	c, _ := jsonContext(t, map[string]any{
		"title":       "Demo reel",
		"description": "Walkthrough of the latest build",
		"type":        "video",
		"category":    "demos",
	})

	_, ok := processBody(c, models.ShowcaseSchema, schema.Strict, "mediaUrl")

	assert.True(t, ok)
}

// A bad body must fail validation before any upload is attempted. With no
// uploader configured, an attempted upload would surface as a 502; the 400
// naming the missing field proves the fields were checked first.
func TestCreateProjectValidatesBeforeUpload(t *testing.T) {
	c, w := formContextWithFile(t, map[string]string{
		"description":      "A portfolio piece",
		"shortDescription": "Portfolio piece",
		"category":         "web",
		"status":           "completed",
	}, "thumbnail", "shot.png", "image/png")

	CreateProject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title")
}

func TestProcessBodyInvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	_, ok := processBody(c, models.SkillSchema, schema.Strict)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
