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

// GetAdminProfile returns the singleton profile, or an empty object when it
// has never been written so the dashboard can render a blank form.
func GetAdminProfile(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	var profile models.Profile
	err := database.Profiles.FindOne(ctx, bson.M{}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		respondServer(c, "get profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile upserts the singleton with a key-level merge: only the
// dotted paths present in the body are written, so updating one nested
// field never wipes its siblings.
func UpdateProfile(c *gin.Context) {
	doc, ok := processBody(c, models.ProfileSchema, schema.Partial)
	if !ok {
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	set := schema.Flatten(models.ProfileSchema, doc)

	if fh, ok := formFile(c, "avatar"); ok {
		if !media.ImageAllowed(fh.Header.Get("Content-Type")) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
			return
		}
		url, err := uploadFile(ctx, fh, media.FolderAvatars, "image")
		if err != nil {
			respondUpstream(c, "upload avatar", err)
			return
		}
		set["personalInfo.avatar"] = url
	}

	now := time.Now()
	set["updatedAt"] = now

	onInsert := bson.M{"createdAt": now}
	if _, ok := set["isActive"]; !ok {
		onInsert["isActive"] = true
	}

	_, err := database.Profiles.UpdateOne(ctx, bson.M{},
		bson.M{"$set": set, "$setOnInsert": onInsert},
		options.Update().SetUpsert(true))
	if err != nil {
		respondServer(c, "update profile", err)
		return
	}

	var profile models.Profile
	if err := database.Profiles.FindOne(ctx, bson.M{}).Decode(&profile); err != nil {
		respondServer(c, "update profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadResume stores the CV as a raw asset and records both the direct URL
// and a forced-download variant on the profile.
func UploadResume(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fh, ok := formFile(c, "resume")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No resume provided"})
		return
	}
	ct := fh.Header.Get("Content-Type")
	if !media.DocumentAllowed(ct) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only PDF and Word documents are allowed"})
		return
	}

	if uploads == nil {
		respondServer(c, "upload resume", media.ErrNoURL)
		return
	}

	ctx, cancel := writeCtx()
	defer cancel()

	f, err := fh.Open()
	if err != nil {
		respondServer(c, "upload resume", err)
		return
	}
	defer f.Close()

	asset, err := uploads.UploadResume(ctx, f, fh.Filename, ct)
	if err != nil {
		respondUpstream(c, "upload resume", err)
		return
	}

	now := time.Now()
	set := bson.M{
		"personalInfo.resume":            asset.URL,
		"personalInfo.resumeDownloadUrl": asset.DownloadURL,
		"personalInfo.resumeFileName":    asset.FileName,
		"personalInfo.resumeFileType":    asset.FileType,
		"updatedAt":                      now,
	}
	_, err = database.Profiles.UpdateOne(ctx, bson.M{},
		bson.M{"$set": set, "$setOnInsert": bson.M{"createdAt": now, "isActive": true}},
		options.Update().SetUpsert(true))
	if err != nil {
		respondServer(c, "upload resume", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":         asset.URL,
		"downloadUrl": asset.DownloadURL,
		"fileName":    asset.FileName,
		"fileType":    asset.FileType,
	})
}
