package handlers

import (
	"mime/multipart"
	"net/http"
	"time"

	"portfolio/database"
	"portfolio/media"
	"portfolio/models"
	"portfolio/schema"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetAdminShowcase(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Showcase.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		respondServer(c, "list showcase", err)
		return
	}

	items := []models.Showcase{}
	if err := cursor.All(ctx, &items); err != nil {
		respondServer(c, "list showcase", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateShowcase accepts the media either as a "mediaUrl" file part or as a
// string URL in the body. A pending file satisfies the required field so
// validation can run before anything is uploaded.
func CreateShowcase(c *gin.Context) {
	var supplied []string
	var mediaFile *multipart.FileHeader
	var hasMedia bool
	if c.ContentType() == "multipart/form-data" {
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if mediaFile, hasMedia = formFile(c, "mediaUrl"); hasMedia {
			supplied = append(supplied, "mediaUrl")
		}
	}

	doc, ok := processBody(c, models.ShowcaseSchema, schema.Strict, supplied...)
	if !ok {
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	if hasMedia {
		ct := mediaFile.Header.Get("Content-Type")
		if !media.MediaAllowed(ct) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image and video files are allowed"})
			return
		}
		url, err := uploadFile(ctx, mediaFile, media.FolderShowcaseMedia, media.ResourceTypeFor(ct))
		if err != nil {
			respondUpstream(c, "upload showcase media", err)
			return
		}
		doc["mediaUrl"] = url
	}

	if fh, ok := formFile(c, "thumbnail"); ok {
		if !media.ImageAllowed(fh.Header.Get("Content-Type")) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
			return
		}
		url, err := uploadFile(ctx, fh, media.FolderShowcaseThumbnails, "image")
		if err != nil {
			respondUpstream(c, "upload showcase thumbnail", err)
			return
		}
		doc["thumbnailUrl"] = url
	}

	doc = schema.ApplyDefaults(models.ShowcaseSchema, doc)
	now := time.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	result, err := database.Showcase.InsertOne(ctx, bson.M(doc))
	if err != nil {
		respondServer(c, "create showcase", err)
		return
	}

	var item models.Showcase
	if err := database.Showcase.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&item); err != nil {
		respondServer(c, "create showcase", err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateShowcase(c *gin.Context) {
	id, ok := objectID(c, "Showcase")
	if !ok {
		return
	}

	doc, ok := processBody(c, models.ShowcaseSchema, schema.Partial)
	if !ok {
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	if fh, ok := formFile(c, "mediaUrl"); ok {
		ct := fh.Header.Get("Content-Type")
		if !media.MediaAllowed(ct) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image and video files are allowed"})
			return
		}
		url, err := uploadFile(ctx, fh, media.FolderShowcaseMedia, media.ResourceTypeFor(ct))
		if err != nil {
			respondUpstream(c, "upload showcase media", err)
			return
		}
		doc["mediaUrl"] = url
	}

	if fh, ok := formFile(c, "thumbnail"); ok {
		if !media.ImageAllowed(fh.Header.Get("Content-Type")) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
			return
		}
		url, err := uploadFile(ctx, fh, media.FolderShowcaseThumbnails, "image")
		if err != nil {
			respondUpstream(c, "upload showcase thumbnail", err)
			return
		}
		doc["thumbnailUrl"] = url
	}

	set := schema.Flatten(models.ShowcaseSchema, doc)
	if url, ok := doc["thumbnailUrl"]; ok {
		set["thumbnailUrl"] = url
	}
	set["updatedAt"] = time.Now()

	result, err := database.Showcase.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		respondServer(c, "update showcase", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "Showcase")
		return
	}

	var item models.Showcase
	if err := database.Showcase.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		respondServer(c, "update showcase", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteShowcase(c *gin.Context) {
	id, ok := objectID(c, "Showcase")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Showcase.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		respondServer(c, "delete showcase", err)
		return
	}
	if result.DeletedCount == 0 {
		notFound(c, "Showcase")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Showcase item deleted successfully"})
}

// UploadShowcaseMedia replaces the media asset on an existing item.
func UploadShowcaseMedia(c *gin.Context) {
	id, ok := objectID(c, "Showcase")
	if !ok {
		return
	}

	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fh, ok := formFile(c, "media")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No media provided"})
		return
	}
	ct := fh.Header.Get("Content-Type")
	if !media.MediaAllowed(ct) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only image and video files are allowed"})
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	url, err := uploadFile(ctx, fh, media.FolderShowcaseMedia, media.ResourceTypeFor(ct))
	if err != nil {
		respondUpstream(c, "upload showcase media", err)
		return
	}

	result, err := database.Showcase.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"mediaUrl": url, "updatedAt": time.Now()}})
	if err != nil {
		respondServer(c, "upload showcase media", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "Showcase")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// UploadShowcaseThumbnail replaces the thumbnail on an existing item.
func UploadShowcaseThumbnail(c *gin.Context) {
	id, ok := objectID(c, "Showcase")
	if !ok {
		return
	}

	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fh, ok := formFile(c, "thumbnail")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No thumbnail provided"})
		return
	}
	if !media.ImageAllowed(fh.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	url, err := uploadFile(ctx, fh, media.FolderShowcaseThumbnails, "image")
	if err != nil {
		respondUpstream(c, "upload showcase thumbnail", err)
		return
	}

	result, err := database.Showcase.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"thumbnailUrl": url, "updatedAt": time.Now()}})
	if err != nil {
		respondServer(c, "upload showcase thumbnail", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "Showcase")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
