package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Skill struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name              string             `bson:"name" json:"name"`
	Category          string             `bson:"category" json:"category"`
	Level             string             `bson:"level" json:"level"`
	Icon              string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	YearsOfExperience int                `bson:"yearsOfExperience,omitempty" json:"yearsOfExperience,omitempty"`
	IsActive          bool               `bson:"isActive" json:"isActive"`
	Order             int                `bson:"order" json:"order"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
