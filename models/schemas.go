package models

import "portfolio/schema"

// Writable shapes for the admin endpoints, declared as data and consumed
// by the generic coercion/validation pipeline in the schema package.
// Media reference fields (thumbnailUrl, featuredImage, avatar, resume) are
// deliberately absent: they are spliced in by the upload attacher, never
// accepted from the structured body.

var ProjectSchema = schema.Schema{
	Entity: "project",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.String, Required: true},
		{Name: "description", Kind: schema.String, Required: true},
		{Name: "shortDescription", Kind: schema.String, Required: true},
		{Name: "images", Kind: schema.StringList, Default: []string{}},
		{Name: "technologies", Kind: schema.StringList, Default: []string{}},
		{Name: "features", Kind: schema.StringList, Default: []string{}},
		{Name: "liveUrl", Kind: schema.String},
		{Name: "githubUrl", Kind: schema.String},
		{Name: "category", Kind: schema.String, Required: true, Enum: []string{"web", "mobile", "desktop", "api", "other"}},
		{Name: "status", Kind: schema.String, Required: true, Enum: []string{"completed", "in-progress", "planned"}},
		{Name: "isFeatured", Kind: schema.Bool, Default: false},
		{Name: "isActive", Kind: schema.Bool, Default: true},
		{Name: "order", Kind: schema.Int, Default: 0},
	},
}

var BlogSchema = schema.Schema{
	Entity: "blog",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.String, Required: true},
		{Name: "slug", Kind: schema.String, Required: true},
		{Name: "excerpt", Kind: schema.String, Required: true},
		{Name: "content", Kind: schema.String, Required: true},
		{Name: "redirectUrl", Kind: schema.String},
		{Name: "tags", Kind: schema.StringList, Default: []string{}},
		{Name: "category", Kind: schema.String, Required: true},
		{Name: "readingTime", Kind: schema.Int, Required: true},
		{Name: "isPublished", Kind: schema.Bool, Default: false},
		{Name: "isFeatured", Kind: schema.Bool, Default: false},
		{Name: "views", Kind: schema.Int, Default: 0},
		{Name: "likes", Kind: schema.Int, Default: 0},
		{Name: "publishedAt", Kind: schema.Time},
	},
}

var SkillSchema = schema.Schema{
	Entity: "skill",
	Fields: []schema.Field{
		{Name: "name", Kind: schema.String, Required: true},
		{Name: "category", Kind: schema.String, Required: true, Enum: []string{"frontend", "backend", "database", "devops", "tools", "soft"}},
		{Name: "level", Kind: schema.String, Required: true, Enum: []string{"beginner", "intermediate", "advanced", "expert"}},
		{Name: "icon", Kind: schema.String},
		{Name: "description", Kind: schema.String},
		{Name: "yearsOfExperience", Kind: schema.Int},
		{Name: "isActive", Kind: schema.Bool, Default: true},
		{Name: "order", Kind: schema.Int, Default: 0},
	},
}

var ExperienceSchema = schema.Schema{
	Entity: "experience",
	Fields: []schema.Field{
		{Name: "company", Kind: schema.String, Required: true},
		{Name: "position", Kind: schema.String, Required: true},
		{Name: "location", Kind: schema.String, Required: true},
		{Name: "startDate", Kind: schema.Time, Required: true},
		{Name: "endDate", Kind: schema.Time},
		{Name: "isCurrentJob", Kind: schema.Bool, Required: true},
		{Name: "description", Kind: schema.String},
		{Name: "responsibilities", Kind: schema.StringList, Default: []string{}},
		{Name: "achievements", Kind: schema.StringList, Default: []string{}},
		{Name: "technologies", Kind: schema.StringList, Default: []string{}},
		{Name: "companyLogo", Kind: schema.String},
		{Name: "companyUrl", Kind: schema.String},
		{Name: "isActive", Kind: schema.Bool, Default: true},
		{Name: "order", Kind: schema.Int, Default: 0},
	},
}

var ShowcaseSchema = schema.Schema{
	Entity: "showcase",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.String, Required: true},
		{Name: "description", Kind: schema.String, Required: true},
		{Name: "type", Kind: schema.String, Required: true, Enum: []string{"image", "video", "demo", "certificate"}},
		{Name: "mediaUrl", Kind: schema.String, Required: true},
		{Name: "category", Kind: schema.String, Required: true},
		{Name: "tags", Kind: schema.StringList, Default: []string{}},
		{Name: "isActive", Kind: schema.Bool, Default: true},
		{Name: "order", Kind: schema.Int, Default: 0},
	},
}

var ProfileSchema = schema.Schema{
	Entity: "profile",
	Fields: []schema.Field{
		{Name: "personalInfo", Kind: schema.Object, Fields: []schema.Field{
			{Name: "name", Kind: schema.String},
			{Name: "title", Kind: schema.String},
			{Name: "bio", Kind: schema.String},
			{Name: "location", Kind: schema.String},
			{Name: "email", Kind: schema.String},
			{Name: "phone", Kind: schema.String},
			{Name: "socialLinks", Kind: schema.Object, Fields: []schema.Field{
				{Name: "github", Kind: schema.String},
				{Name: "linkedin", Kind: schema.String},
				{Name: "twitter", Kind: schema.String},
				{Name: "website", Kind: schema.String},
			}},
		}},
		{Name: "hero", Kind: schema.Object, Fields: []schema.Field{
			{Name: "headline", Kind: schema.String},
			{Name: "subheadline", Kind: schema.String},
			{Name: "backgroundImage", Kind: schema.String},
			{Name: "ctaText", Kind: schema.String},
			{Name: "ctaLink", Kind: schema.String},
		}},
		{Name: "about", Kind: schema.Object, Fields: []schema.Field{
			{Name: "description", Kind: schema.String},
			{Name: "images", Kind: schema.StringList},
			{Name: "highlights", Kind: schema.StringList},
		}},
		{Name: "isActive", Kind: schema.Bool, Default: true},
	},
}

var SettingsSchema = schema.Schema{
	Entity: "settings",
	Fields: []schema.Field{
		{Name: "siteName", Kind: schema.String, Required: true},
		{Name: "siteDescription", Kind: schema.String},
		{Name: "siteUrl", Kind: schema.String},
		{Name: "seoKeywords", Kind: schema.StringList, Default: []string{}},
		{Name: "googleAnalytics", Kind: schema.String},
		{Name: "socialLinks", Kind: schema.Object, Fields: []schema.Field{
			{Name: "github", Kind: schema.String},
			{Name: "linkedin", Kind: schema.String},
			{Name: "twitter", Kind: schema.String},
			{Name: "instagram", Kind: schema.String},
		}},
		{Name: "contactEmail", Kind: schema.String},
		{Name: "maintenanceMode", Kind: schema.Bool, Default: false},
		{Name: "theme", Kind: schema.String, Enum: []string{"light", "dark", "system"}, Default: "system"},
	},
}
