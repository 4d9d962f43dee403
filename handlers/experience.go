package handlers

import (
	"net/http"
	"time"

	"portfolio/database"
	"portfolio/models"
	"portfolio/schema"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetAdminExperience(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Experience.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "startDate", Value: -1}}))
	if err != nil {
		respondServer(c, "list experience", err)
		return
	}

	entries := []models.WorkExperience{}
	if err := cursor.All(ctx, &entries); err != nil {
		respondServer(c, "list experience", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func CreateExperience(c *gin.Context) {
	doc, ok := processBody(c, models.ExperienceSchema, schema.Strict)
	if !ok {
		return
	}

	doc = schema.ApplyDefaults(models.ExperienceSchema, doc)
	now := time.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Experience.InsertOne(ctx, bson.M(doc))
	if err != nil {
		respondServer(c, "create experience", err)
		return
	}

	var entry models.WorkExperience
	if err := database.Experience.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&entry); err != nil {
		respondServer(c, "create experience", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func UpdateExperience(c *gin.Context) {
	id, ok := objectID(c, "Experience")
	if !ok {
		return
	}

	doc, ok := processBody(c, models.ExperienceSchema, schema.Partial)
	if !ok {
		return
	}

	set := schema.Flatten(models.ExperienceSchema, doc)
	set["updatedAt"] = time.Now()

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Experience.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		respondServer(c, "update experience", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "Experience")
		return
	}

	var entry models.WorkExperience
	if err := database.Experience.FindOne(ctx, bson.M{"_id": id}).Decode(&entry); err != nil {
		respondServer(c, "update experience", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteExperience(c *gin.Context) {
	id, ok := objectID(c, "Experience")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Experience.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		respondServer(c, "delete experience", err)
		return
	}
	if result.DeletedCount == 0 {
		notFound(c, "Experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully"})
}
