package handlers

import (
	"net/http"
	"strconv"
	"time"

	"portfolio/database"
	"portfolio/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// messageFilter maps the ?read= query to an isRead filter. When the
// parameter is present, any value other than "true" means unread.
func messageFilter(read string, present bool) bson.M {
	filter := bson.M{}
	if present {
		filter["isRead"] = read == "true"
	}
	return filter
}

// GetMessages lists visitor enquiries newest first, paged, optionally
// filtered by read state via ?read=true|false.
func GetMessages(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	filter := messageFilter(c.GetQuery("read"))

	ctx, cancel := dbCtx()
	defer cancel()

	total, err := database.Messages.CountDocuments(ctx, filter)
	if err != nil {
		respondServer(c, "list messages", err)
		return
	}

	cursor, err := database.Messages.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page-1)*limit)).
		SetLimit(int64(limit)))
	if err != nil {
		respondServer(c, "list messages", err)
		return
	}

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		respondServer(c, "list messages", err)
		return
	}

	c.JSON(http.StatusOK, messagePage(messages, total, page, limit))
}

// messagePage is the paged listing envelope: the documents plus total,
// page, the effective limit and the page count.
func messagePage(messages []models.Message, total int64, page, limit int) gin.H {
	return gin.H{
		"messages": messages,
		"total":    total,
		"page":     page,
		"limit":    limit,
		"pages":    (total + int64(limit) - 1) / int64(limit),
	}
}

// MarkMessageRead flags one enquiry as handled.
func MarkMessageRead(c *gin.Context) {
	id, ok := objectID(c, "Message")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Messages.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}})
	if err != nil {
		respondServer(c, "mark message read", err)
		return
	}
	if result.MatchedCount == 0 {
		notFound(c, "Message")
		return
	}

	var msg models.Message
	if err := database.Messages.FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		respondServer(c, "mark message read", err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

type replyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// ReplyToMessage records the reply, then emails it to the sender. The reply
// is persisted even if the mail relay rejects it; the relay failure is
// surfaced as a gateway error so the admin can retry.
func ReplyToMessage(c *gin.Context) {
	id, ok := objectID(c, "Message")
	if !ok {
		return
	}

	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "reply is required"})
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"reply":     req.Reply,
		"isReplied": true,
		"isRead":    true,
		"repliedAt": now,
		"updatedAt": now,
	}}

	var msg models.Message
	err := database.Messages.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&msg)
	if err == mongo.ErrNoDocuments {
		notFound(c, "Message")
		return
	}
	if err != nil {
		respondServer(c, "reply to message", err)
		return
	}

	if mail == nil || !mail.Enabled() {
		log.Warn().Str("messageId", id.Hex()).Msg("reply saved but mailer is not configured")
		c.JSON(http.StatusOK, gin.H{"message": "Reply saved, but email delivery is not configured", "data": msg})
		return
	}

	if err := mail.Send(msg.Email, "Re: "+msg.Subject, req.Reply); err != nil {
		log.Error().Err(err).Str("messageId", id.Hex()).Msg("reply saved but email failed")
		c.JSON(http.StatusBadGateway, gin.H{"message": "Reply saved, but the email could not be sent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reply sent successfully", "data": msg})
}

func DeleteMessage(c *gin.Context) {
	id, ok := objectID(c, "Message")
	if !ok {
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Messages.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		respondServer(c, "delete message", err)
		return
	}
	if result.DeletedCount == 0 {
		notFound(c, "Message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
