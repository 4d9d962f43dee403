package handlers

import (
	"context"
	"net/http"
	"time"

	"portfolio/database"
	"portfolio/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// periodStart maps the ?period query to a window start. Unknown values
// fall back to the 7 day window.
func periodStart(period string) time.Time {
	days := 7
	switch period {
	case "1d":
		days = 1
	case "7d":
		days = 7
	case "30d":
		days = 30
	case "90d":
		days = 90
	}
	return time.Now().AddDate(0, 0, -days)
}

func sumViews(ctx context.Context, coll *mongo.Collection) (int64, error) {
	cursor, err := coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "views": bson.M{"$sum": "$views"}}}},
	})
	if err != nil {
		return 0, err
	}

	var out []struct {
		Views int64 `bson:"views"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Views, nil
}

// GetAnalyticsOverview returns headline counters for the dashboard.
func GetAnalyticsOverview(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	counts := gin.H{}
	for name, coll := range map[string]*mongo.Collection{
		"projects":   database.Projects,
		"blogs":      database.Blogs,
		"skills":     database.Skills,
		"experience": database.Experience,
		"showcase":   database.Showcase,
		"messages":   database.Messages,
	} {
		n, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			respondServer(c, "analytics overview", err)
			return
		}
		counts[name] = n
	}

	unread, err := database.Messages.CountDocuments(ctx, bson.M{"isRead": false})
	if err != nil {
		respondServer(c, "analytics overview", err)
		return
	}
	published, err := database.Blogs.CountDocuments(ctx, bson.M{"isPublished": true})
	if err != nil {
		respondServer(c, "analytics overview", err)
		return
	}

	projectViews, err := sumViews(ctx, database.Projects)
	if err != nil {
		respondServer(c, "analytics overview", err)
		return
	}
	blogViews, err := sumViews(ctx, database.Blogs)
	if err != nil {
		respondServer(c, "analytics overview", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":         counts,
		"unreadMessages": unread,
		"publishedBlogs": published,
		"totalViews": gin.H{
			"projects": projectViews,
			"blogs":    blogViews,
		},
	})
}

// GetRecentActivity returns the five newest documents of each content type.
func GetRecentActivity(c *gin.Context) {
	ctx, cancel := dbCtx()
	defer cancel()

	recent := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5)

	projects := []models.Project{}
	cursor, err := database.Projects.Find(ctx, bson.M{}, recent)
	if err == nil {
		err = cursor.All(ctx, &projects)
	}
	if err != nil {
		respondServer(c, "recent activity", err)
		return
	}

	blogs := []models.Blog{}
	cursor, err = database.Blogs.Find(ctx, bson.M{}, recent)
	if err == nil {
		err = cursor.All(ctx, &blogs)
	}
	if err != nil {
		respondServer(c, "recent activity", err)
		return
	}

	messages := []models.Message{}
	cursor, err = database.Messages.Find(ctx, bson.M{}, recent)
	if err == nil {
		err = cursor.All(ctx, &messages)
	}
	if err != nil {
		respondServer(c, "recent activity", err)
		return
	}

	showcase := []models.Showcase{}
	cursor, err = database.Showcase.Find(ctx, bson.M{}, recent)
	if err == nil {
		err = cursor.All(ctx, &showcase)
	}
	if err != nil {
		respondServer(c, "recent activity", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"blogs":    blogs,
		"messages": messages,
		"showcase": showcase,
	})
}

// contentAnalytics buckets documents created inside the period by day and
// ranks the ten most viewed.
func contentAnalytics(c *gin.Context, coll *mongo.Collection, action string) {
	since := periodStart(c.Query("period"))

	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$createdAt",
			}},
			"count": bson.M{"$sum": 1},
			"views": bson.M{"$sum": "$views"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	})
	if err != nil {
		respondServer(c, action, err)
		return
	}

	var daily []bson.M
	if err := cursor.All(ctx, &daily); err != nil {
		respondServer(c, action, err)
		return
	}

	topCursor, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "views", Value: -1}}).SetLimit(10))
	if err != nil {
		respondServer(c, action, err)
		return
	}

	var top []bson.M
	if err := topCursor.All(ctx, &top); err != nil {
		respondServer(c, action, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily": daily, "top": top})
}

func GetBlogAnalytics(c *gin.Context) {
	contentAnalytics(c, database.Blogs, "blog analytics")
}

func GetProjectAnalytics(c *gin.Context) {
	contentAnalytics(c, database.Projects, "project analytics")
}
