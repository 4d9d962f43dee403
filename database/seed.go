package database

import (
	"context"
	"os"
	"time"

	"portfolio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser creates the admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD if no user with that email exists yet. Returns true when
// a user was created.
func EnsureAdminUser(ctx context.Context) (bool, error) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return false, nil
	}

	err := Users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return false, nil
	}
	if err != mongo.ErrNoDocuments {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  string(hash),
		Role:      "admin",
		Profile:   models.UserProfile{Name: name},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := Users.InsertOne(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}
