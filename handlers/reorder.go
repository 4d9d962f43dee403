package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type reorderItem struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

type reorderRequest struct {
	Order []reorderItem `json:"order" binding:"required,min=1,dive"`
}

// reorderModels builds one write model per item so the whole reorder lands
// in a single bulk round trip.
func reorderModels(items []reorderItem) ([]mongo.WriteModel, error) {
	now := time.Now()
	models := make([]mongo.WriteModel, 0, len(items))
	for _, item := range items {
		id, err := primitive.ObjectIDFromHex(item.ID)
		if err != nil {
			return nil, err
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"order": item.Order, "updatedAt": now}}))
	}
	return models, nil
}

// ReorderHandler persists a new display order for one collection.
func ReorderHandler(coll func() *mongo.Collection, entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "order is required"})
			return
		}

		models, err := reorderModels(req.Order)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item id"})
			return
		}

		ctx, cancel := dbCtx()
		defer cancel()

		if _, err := coll().BulkWrite(ctx, models); err != nil {
			respondServer(c, "reorder "+entity, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": entity + " reordered successfully"})
	}
}
