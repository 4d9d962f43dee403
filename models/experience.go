package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkExperience struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Company          string             `bson:"company" json:"company"`
	Position         string             `bson:"position" json:"position"`
	Location         string             `bson:"location" json:"location"`
	StartDate        time.Time          `bson:"startDate" json:"startDate"`
	EndDate          *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	IsCurrentJob     bool               `bson:"isCurrentJob" json:"isCurrentJob"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Responsibilities []string           `bson:"responsibilities" json:"responsibilities"`
	Achievements     []string           `bson:"achievements" json:"achievements"`
	Technologies     []string           `bson:"technologies" json:"technologies"`
	CompanyLogo      string             `bson:"companyLogo,omitempty" json:"companyLogo,omitempty"`
	CompanyURL       string             `bson:"companyUrl,omitempty" json:"companyUrl,omitempty"`
	IsActive         bool               `bson:"isActive" json:"isActive"`
	Order            int                `bson:"order" json:"order"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
