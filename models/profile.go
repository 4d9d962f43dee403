package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is a singleton: public reads select the isActive record, admin
// writes upsert against an empty filter.
type Profile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PersonalInfo PersonalInfo       `bson:"personalInfo" json:"personalInfo"`
	Hero         Hero               `bson:"hero" json:"hero"`
	About        About              `bson:"about" json:"about"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type PersonalInfo struct {
	Name              string      `bson:"name,omitempty" json:"name,omitempty"`
	Title             string      `bson:"title,omitempty" json:"title,omitempty"`
	Bio               string      `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar            string      `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Resume            string      `bson:"resume,omitempty" json:"resume,omitempty"`
	ResumeDownloadURL string      `bson:"resumeDownloadUrl,omitempty" json:"resumeDownloadUrl,omitempty"`
	ResumeFileName    string      `bson:"resumeFileName,omitempty" json:"resumeFileName,omitempty"`
	ResumeFileType    string      `bson:"resumeFileType,omitempty" json:"resumeFileType,omitempty"`
	Location          string      `bson:"location,omitempty" json:"location,omitempty"`
	Email             string      `bson:"email,omitempty" json:"email,omitempty"`
	Phone             string      `bson:"phone,omitempty" json:"phone,omitempty"`
	SocialLinks       SocialLinks `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
}

type SocialLinks struct {
	Github   string `bson:"github,omitempty" json:"github,omitempty"`
	Linkedin string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
}

type Hero struct {
	Headline        string `bson:"headline,omitempty" json:"headline,omitempty"`
	Subheadline     string `bson:"subheadline,omitempty" json:"subheadline,omitempty"`
	BackgroundImage string `bson:"backgroundImage,omitempty" json:"backgroundImage,omitempty"`
	CTAText         string `bson:"ctaText,omitempty" json:"ctaText,omitempty"`
	CTALink         string `bson:"ctaLink,omitempty" json:"ctaLink,omitempty"`
}

type About struct {
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string `bson:"images,omitempty" json:"images,omitempty"`
	Highlights  []string `bson:"highlights,omitempty" json:"highlights,omitempty"`
}
