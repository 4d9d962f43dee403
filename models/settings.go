package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings is a singleton like Profile: admin writes upsert against an
// empty filter.
type Settings struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SiteName        string             `bson:"siteName" json:"siteName"`
	SiteDescription string             `bson:"siteDescription,omitempty" json:"siteDescription,omitempty"`
	SiteURL         string             `bson:"siteUrl,omitempty" json:"siteUrl,omitempty"`
	SEOKeywords     []string           `bson:"seoKeywords" json:"seoKeywords"`
	GoogleAnalytics string             `bson:"googleAnalytics,omitempty" json:"googleAnalytics,omitempty"`
	SocialLinks     SettingsLinks      `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	ContactEmail    string             `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	MaintenanceMode bool               `bson:"maintenanceMode" json:"maintenanceMode"`
	Theme           string             `bson:"theme" json:"theme"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SettingsLinks struct {
	Github    string `bson:"github,omitempty" json:"github,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}
