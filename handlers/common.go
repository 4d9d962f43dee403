package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"portfolio/media"
	"portfolio/schema"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mailerpkg "portfolio/mailer"
)

const (
	dbTimeout    = 10 * time.Second
	writeTimeout = 30 * time.Second

	maxMultipartMemory = 50 << 20
	maxGalleryFiles    = 10
)

// Collaborators shared across all handler files, wired from main.
var (
	log     = zerolog.Nop()
	uploads *media.Uploader
	mail    *mailerpkg.Mailer
)

func SetLogger(l zerolog.Logger) { log = l }

func SetUploader(u *media.Uploader) { uploads = u }

func SetMailer(m *mailerpkg.Mailer) { mail = m }

func dbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// writeCtx allows extra headroom for requests that also talk to the media
// host.
func writeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), writeTimeout)
}

// requestBody decodes the request into the pipeline's common shape. JSON
// bodies arrive nested and typed; multipart bodies arrive as flat
// bracket-notation string fields and are expanded here. File parts stay on
// the request for formFile.
func requestBody(c *gin.Context) (map[string]any, error) {
	if c.ContentType() == "multipart/form-data" {
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, err
		}
		return schema.ExpandForm(c.Request.MultipartForm.Value), nil
	}

	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil && err != io.EOF {
		return nil, err
	}
	return raw, nil
}

// processBody runs coercion and validation for one entity and writes the
// 400 response itself on failure. Names in supplied count as present, for
// required fields satisfied by a pending attachment.
func processBody(c *gin.Context, s schema.Schema, mode schema.Mode, supplied ...string) (map[string]any, bool) {
	raw, err := requestBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return nil, false
	}

	doc := schema.Coerce(s, raw)
	if err := schema.Validate(s, doc, mode, supplied...); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return nil, false
	}
	return doc, true
}

// formFile returns the named file part when present. Absence is not an
// error; attachments are optional on most endpoints.
func formFile(c *gin.Context, field string) (*multipart.FileHeader, bool) {
	if c.Request.MultipartForm == nil {
		return nil, false
	}
	files := c.Request.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, false
	}
	return files[0], true
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	if c.Request.MultipartForm == nil {
		return nil
	}
	return c.Request.MultipartForm.File[field]
}

// uploadFile pushes one attachment to the media host and returns its
// reference URL. MIME gating must have happened before this call.
func uploadFile(ctx context.Context, fh *multipart.FileHeader, folder, resourceType string) (string, error) {
	if uploads == nil {
		return "", media.ErrNoURL
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return uploads.Upload(ctx, f, folder, resourceType)
}

// objectID parses the :id route param. A malformed id cannot reference any
// document, so it reports not found.
func objectID(c *gin.Context, entity string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondServer logs the cause server-side and returns a generic message,
// never internal error detail.
func respondServer(c *gin.Context, action string, err error) {
	log.Error().Err(err).Str("action", action).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

func respondUpstream(c *gin.Context, action string, err error) {
	log.Error().Err(err).Str("action", action).Msg("upstream collaborator failed")
	c.JSON(http.StatusBadGateway, gin.H{"message": "Upstream service failed"})
}

func notFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
}
