package handlers

import (
	"net/http"
	"time"

	"portfolio/database"
	"portfolio/media"
	"portfolio/models"
	"portfolio/schema"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAdminProjects lists every project for the dashboard, drafts included.
func GetAdminProjects(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Projects.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		respondServer(c, "list projects", err)
		return
	}

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		respondServer(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func GetAdminProject(c *gin.Context) {
	id, ok := objectID(c, "Project")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	var project models.Project
	if err := database.Projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project); err != nil {
		if err == mongo.ErrNoDocuments {
			notFound(c, "Project")
			return
		}
		respondServer(c, "get project", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject validates the structured body first; the thumbnail is only
// uploaded once the fields are known to be good.
func CreateProject(c *gin.Context) {
	doc, ok := processBody(c, models.ProjectSchema, schema.Strict)
	if !ok {
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	if fh, ok := formFile(c, "thumbnail"); ok {
		if !media.ImageAllowed(fh.Header.Get("Content-Type")) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
			return
		}
		url, err := uploadFile(ctx, fh, media.FolderProjectThumbnails, "image")
		if err != nil {
			respondUpstream(c, "upload project thumbnail", err)
			return
		}
		doc["thumbnailUrl"] = url
	}

	doc = schema.ApplyDefaults(models.ProjectSchema, doc)
	now := time.Now()
	doc["views"] = 0
	doc["createdAt"] = now
	doc["updatedAt"] = now

	result, err := database.Projects.InsertOne(ctx, bson.M(doc))
	if err != nil {
		respondServer(c, "create project", err)
		return
	}

	var project models.Project
	if err := database.Projects.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&project); err != nil {
		respondServer(c, "create project", err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject applies a partial update; fields absent from the body are
// left untouched.
func UpdateProject(c *gin.Context) {
	id, ok := objectID(c, "Project")
	if !ok {
		return
	}

	doc, ok := processBody(c, models.ProjectSchema, schema.Partial)
	if !ok {
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	if fh, ok := formFile(c, "thumbnail"); ok {
		if !media.ImageAllowed(fh.Header.Get("Content-Type")) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
			return
		}
		url, err := uploadFile(ctx, fh, media.FolderProjectThumbnails, "image")
		if err != nil {
			respondUpstream(c, "upload project thumbnail", err)
			return
		}
		doc["thumbnailUrl"] = url
	}

	set := schema.Flatten(models.ProjectSchema, doc)
	if url, ok := doc["thumbnailUrl"]; ok {
		set["thumbnailUrl"] = url
	}
	set["updatedAt"] = time.Now()

	result, err := database.Projects.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		respondServer(c, "update project", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "Project")
		return
	}

	var project models.Project
	if err := database.Projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project); err != nil {
		respondServer(c, "update project", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func DeleteProject(c *gin.Context) {
	id, ok := objectID(c, "Project")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		respondServer(c, "delete project", err)
		return
	}
	if result.DeletedCount == 0 {
		notFound(c, "Project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// UploadProjectImages appends gallery images to an existing project. Every
// file is gated before any upload starts so a bad file cannot leave a
// half-written gallery behind.
func UploadProjectImages(c *gin.Context) {
	id, ok := objectID(c, "Project")
	if !ok {
		return
	}

	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	files := formFiles(c, "images")
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No images provided"})
		return
	}
	if len(files) > maxGalleryFiles {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A maximum of 10 images can be uploaded at once"})
		return
	}
	for _, fh := range files {
		if !media.ImageAllowed(fh.Header.Get("Content-Type")) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
			return
		}
	}

	ctx, cancel := writeCtx()
	defer cancel()

	if err := database.Projects.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			notFound(c, "Project")
			return
		}
		respondServer(c, "upload project images", err)
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := uploadFile(ctx, fh, media.FolderProjectImages, "image")
		if err != nil {
			respondUpstream(c, "upload project images", err)
			return
		}
		urls = append(urls, url)
	}

	update := bson.M{
		"$push": bson.M{"images": bson.M{"$each": urls}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := database.Projects.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		respondServer(c, "upload project images", err)
		return
	}

	var project models.Project
	if err := database.Projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project); err != nil {
		respondServer(c, "upload project images", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls, "project": project})
}

// UploadProjectThumbnail uploads a standalone thumbnail and returns its URL
// without touching any document.
func UploadProjectThumbnail(c *gin.Context) {
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

	url, err := uploadFile(ctx, fh, media.FolderProjectThumbnails, "image")
	if err != nil {
		respondUpstream(c, "upload project thumbnail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
