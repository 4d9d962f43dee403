package handlers

import (
	"net/http"
	"time"

	"portfolio/database"
	"portfolio/models"
	"portfolio/schema"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetSettings returns the singleton site settings, or an empty object when
// none have been saved yet.
func GetSettings(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	var settings models.Settings
	err := database.Settings.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		respondServer(c, "get settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings upserts the singleton. Defaults only apply on first
// insert; later partial writes touch only the keys provided.
func UpdateSettings(c *gin.Context) {
	doc, ok := processBody(c, models.SettingsSchema, schema.Partial)
	if !ok {
		return
	}

	set := schema.Flatten(models.SettingsSchema, doc)
	now := time.Now()
	set["updatedAt"] = now

	onInsert := bson.M{"createdAt": now}
	defaults := schema.ApplyDefaults(models.SettingsSchema, doc)
	for name, v := range schema.Flatten(models.SettingsSchema, defaults) {
		if _, ok := set[name]; !ok {
			onInsert[name] = v
		}
	}

	ctx, cancel := dbCtx()
	defer cancel()

	_, err := database.Settings.UpdateOne(ctx, bson.M{},
		bson.M{"$set": set, "$setOnInsert": onInsert},
		options.Update().SetUpsert(true))
	if err != nil {
		respondServer(c, "update settings", err)
		return
	}

	var settings models.Settings
	if err := database.Settings.FindOne(ctx, bson.M{}).Decode(&settings); err != nil {
		respondServer(c, "update settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
