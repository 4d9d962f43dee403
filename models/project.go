package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	Images           []string           `bson:"images" json:"images"`
	Technologies     []string           `bson:"technologies" json:"technologies"`
	Features         []string           `bson:"features" json:"features"`
	LiveURL          string             `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	GithubURL        string             `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	ThumbnailURL     string             `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	Category         string             `bson:"category" json:"category"`
	Status           string             `bson:"status" json:"status"`
	IsFeatured       bool               `bson:"isFeatured" json:"isFeatured"`
	IsActive         bool               `bson:"isActive" json:"isActive"`
	Order            int                `bson:"order" json:"order"`
	Views            int                `bson:"views" json:"views"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
