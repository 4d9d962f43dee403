package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Excerpt       string             `bson:"excerpt" json:"excerpt"`
	Content       string             `bson:"content" json:"content"`
	FeaturedImage string             `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	RedirectURL   string             `bson:"redirectUrl,omitempty" json:"redirectUrl,omitempty"`
	Tags          []string           `bson:"tags" json:"tags"`
	Category      string             `bson:"category" json:"category"`
	ReadingTime   int                `bson:"readingTime" json:"readingTime"`
	IsPublished   bool               `bson:"isPublished" json:"isPublished"`
	IsFeatured    bool               `bson:"isFeatured" json:"isFeatured"`
	Views         int                `bson:"views" json:"views"`
	Likes         int                `bson:"likes" json:"likes"`
	PublishedAt   *time.Time         `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
