package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"portfolio/database"
	"portfolio/middleware"
	"portfolio/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 7 * 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies admin credentials and issues a signed session token.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"email": strings.ToLower(req.Email)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		respondServer(c, "login", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	now := time.Now()
	claims := middleware.Claims{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		respondServer(c, "login", err)
		return
	}

	log.Info().Str("userId", user.ID.Hex()).Msg("admin logged in")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Profile.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout exists so clients have a uniform endpoint to hit; the token itself
// is stateless and simply discarded client-side.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetAuthProfile returns the account behind the presented token.
func GetAuthProfile(c *gin.Context) {
	userID, ok := objectIDFromClaims(c)
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	var user models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			notFound(c, "User")
			return
		}
		respondServer(c, "get auth profile", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func objectIDFromClaims(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return primitive.NilObjectID, false
	}
	return id, true
}

type updateAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

// UpdateAuthProfile updates the authenticated account. Password changes are
// re-hashed before they are stored.
func UpdateAuthProfile(c *gin.Context) {
	userID, ok := objectIDFromClaims(c)
	if !ok {
		return
	}

	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		set["profile.name"] = req.Name
	}
	if req.Email != "" {
		set["email"] = strings.ToLower(req.Email)
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondServer(c, "update auth profile", err)
			return
		}
		set["password"] = string(hash)
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		respondServer(c, "update auth profile", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "User")
		return
	}

	var user models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		respondServer(c, "update auth profile", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
