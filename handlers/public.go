package handlers

import (
	"net/http"

	"portfolio/database"
	"portfolio/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Public read endpoints. Only active (or published) documents are visible
// here; drafts stay admin-only.

func GetProfile(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	var profile models.Profile
	err := database.Profiles.FindOne(ctx, bson.M{"isActive": true}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		notFound(c, "Profile")
		return
	}
	if err != nil {
		respondServer(c, "get public profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DownloadResume redirects to the forced-download media URL so the browser
// saves the file instead of rendering it.
func DownloadResume(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	var profile models.Profile
	err := database.Profiles.FindOne(ctx, bson.M{"isActive": true}).Decode(&profile)
	if err == mongo.ErrNoDocuments || (err == nil && profile.PersonalInfo.Resume == "") {
		notFound(c, "Resume")
		return
	}
	if err != nil {
		respondServer(c, "download resume", err)
		return
	}

	url := profile.PersonalInfo.ResumeDownloadURL
	if url == "" {
		url = profile.PersonalInfo.Resume
	}
	c.Redirect(http.StatusFound, url)
}

func GetProjects(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Projects.Find(ctx, bson.M{"isActive": true},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		respondServer(c, "list public projects", err)
		return
	}

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		respondServer(c, "list public projects", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns one visible project and counts the view.
func GetProject(c *gin.Context) {
	id, ok := objectID(c, "Project")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	var project models.Project
	err := database.Projects.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "isActive": true},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&project)
	if err == mongo.ErrNoDocuments {
		notFound(c, "Project")
		return
	}
	if err != nil {
		respondServer(c, "get public project", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func GetBlogs(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Blogs.Find(ctx, bson.M{"isPublished": true},
		options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}}))
	if err != nil {
		respondServer(c, "list public blogs", err)
		return
	}

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		respondServer(c, "list public blogs", err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GetBlogBySlug returns one published post and counts the view.
func GetBlogBySlug(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	var blog models.Blog
	err := database.Blogs.FindOneAndUpdate(ctx,
		bson.M{"slug": c.Param("slug"), "isPublished": true},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		notFound(c, "Blog")
		return
	}
	if err != nil {
		respondServer(c, "get public blog", err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func GetSkills(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Skills.Find(ctx, bson.M{"isActive": true},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		respondServer(c, "list public skills", err)
		return
	}

	skills := []models.Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		respondServer(c, "list public skills", err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func GetExperience(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Experience.Find(ctx, bson.M{"isActive": true},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "startDate", Value: -1}}))
	if err != nil {
		respondServer(c, "list public experience", err)
		return
	}

	entries := []models.WorkExperience{}
	if err := cursor.All(ctx, &entries); err != nil {
		respondServer(c, "list public experience", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func GetShowcase(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Showcase.Find(ctx, bson.M{"isActive": true},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		respondServer(c, "list public showcase", err)
		return
	}

	items := []models.Showcase{}
	if err := cursor.All(ctx, &items); err != nil {
		respondServer(c, "list public showcase", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
