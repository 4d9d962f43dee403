package database

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

var (
	Projects   *mongo.Collection
	Blogs      *mongo.Collection
	Skills     *mongo.Collection
	Experience *mongo.Collection
	Showcase   *mongo.Collection
	Profiles   *mongo.Collection
	Settings   *mongo.Collection
	Messages   *mongo.Collection
	Users      *mongo.Collection
)

func ConnectMongo() error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "portfolio"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri).SetMaxPoolSize(10))
	if err != nil {
		return err
	}

	if err := Client.Ping(ctx, nil); err != nil {
		return err
	}

	db := Client.Database(dbName)
	Projects = db.Collection("projects")
	Blogs = db.Collection("blogs")
	Skills = db.Collection("skills")
	Experience = db.Collection("workexperiences")
	Showcase = db.Collection("showcases")
	Profiles = db.Collection("profiles")
	Settings = db.Collection("settings")
	Messages = db.Collection("messages")
	Users = db.Collection("users")

	return nil
}

func DisconnectMongo() error {
	if Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return Client.Disconnect(ctx)
}
