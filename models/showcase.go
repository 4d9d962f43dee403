package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Showcase struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Type         string             `bson:"type" json:"type"`
	MediaURL     string             `bson:"mediaUrl" json:"mediaUrl"`
	ThumbnailURL string             `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	Category     string             `bson:"category" json:"category"`
	Tags         []string           `bson:"tags" json:"tags"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
