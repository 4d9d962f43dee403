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

func GetAdminBlogs(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Blogs.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		respondServer(c, "list blogs", err)
		return
	}

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		respondServer(c, "list blogs", err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func GetAdminBlog(c *gin.Context) {
	id, ok := objectID(c, "Blog")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	var blog models.Blog
	if err := database.Blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&blog); err != nil {
		if err == mongo.ErrNoDocuments {
			notFound(c, "Blog")
			return
		}
		respondServer(c, "get blog", err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// CreateBlog accepts an optional "thumbnail" file part which becomes the
// post's featured image.
func CreateBlog(c *gin.Context) {
	doc, ok := processBody(c, models.BlogSchema, schema.Strict)
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
		url, err := uploadFile(ctx, fh, media.FolderBlogThumbnails, "image")
		if err != nil {
			respondUpstream(c, "upload blog thumbnail", err)
			return
		}
		doc["featuredImage"] = url
	}

	doc = schema.ApplyDefaults(models.BlogSchema, doc)
	now := time.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	result, err := database.Blogs.InsertOne(ctx, bson.M(doc))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A blog with this slug already exists"})
			return
		}
		respondServer(c, "create blog", err)
		return
	}

	var blog models.Blog
	if err := database.Blogs.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&blog); err != nil {
		respondServer(c, "create blog", err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

func UpdateBlog(c *gin.Context) {
	id, ok := objectID(c, "Blog")
	if !ok {
		return
	}

	doc, ok := processBody(c, models.BlogSchema, schema.Partial)
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
		url, err := uploadFile(ctx, fh, media.FolderBlogThumbnails, "image")
		if err != nil {
			respondUpstream(c, "upload blog thumbnail", err)
			return
		}
		doc["featuredImage"] = url
	}

	set := schema.Flatten(models.BlogSchema, doc)
	if url, ok := doc["featuredImage"]; ok {
		set["featuredImage"] = url
	}
	set["updatedAt"] = time.Now()

	result, err := database.Blogs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		respondServer(c, "update blog", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "Blog")
		return
	}

	var blog models.Blog
	if err := database.Blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&blog); err != nil {
		respondServer(c, "update blog", err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func DeleteBlog(c *gin.Context) {
	id, ok := objectID(c, "Blog")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Blogs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		respondServer(c, "delete blog", err)
		return
	}
	if result.DeletedCount == 0 {
		notFound(c, "Blog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

// PublishBlog flips a draft live and stamps publishedAt.
func PublishBlog(c *gin.Context) {
	id, ok := objectID(c, "Blog")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	now := time.Now()
	result, err := database.Blogs.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"isPublished": true, "publishedAt": now, "updatedAt": now}})
	if err != nil {
		respondServer(c, "publish blog", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "Blog")
		return
	}

	var blog models.Blog
	if err := database.Blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&blog); err != nil {
		respondServer(c, "publish blog", err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// UploadBlogImage uploads an inline content image and returns its URL for
// the editor to embed.
func UploadBlogImage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fh, ok := formFile(c, "image")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image provided"})
		return
	}
	if !media.ImageAllowed(fh.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	url, err := uploadFile(ctx, fh, media.FolderBlogImages, "image")
	if err != nil {
		respondUpstream(c, "upload blog image", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
