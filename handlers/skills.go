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

func GetAdminSkills(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Skills.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		respondServer(c, "list skills", err)
		return
	}

	skills := []models.Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		respondServer(c, "list skills", err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func CreateSkill(c *gin.Context) {
	doc, ok := processBody(c, models.SkillSchema, schema.Strict)
	if !ok {
		return
	}

	doc = schema.ApplyDefaults(models.SkillSchema, doc)
	now := time.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Skills.InsertOne(ctx, bson.M(doc))
	if err != nil {
		respondServer(c, "create skill", err)
		return
	}

	var skill models.Skill
	if err := database.Skills.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&skill); err != nil {
		respondServer(c, "create skill", err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func UpdateSkill(c *gin.Context) {
	id, ok := objectID(c, "Skill")
	if !ok {
		return
	}

	doc, ok := processBody(c, models.SkillSchema, schema.Partial)
	if !ok {
		return
	}

	set := schema.Flatten(models.SkillSchema, doc)
	set["updatedAt"] = time.Now()

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Skills.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		respondServer(c, "update skill", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "Skill")
		return
	}

	var skill models.Skill
	if err := database.Skills.FindOne(ctx, bson.M{"_id": id}).Decode(&skill); err != nil {
		respondServer(c, "update skill", err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func DeleteSkill(c *gin.Context) {
	id, ok := objectID(c, "Skill")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Skills.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		respondServer(c, "delete skill", err)
		return
	}
	if result.DeletedCount == 0 {
		notFound(c, "Skill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
