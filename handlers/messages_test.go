package handlers

import (
	"testing"

	"portfolio/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMessageFilter(t *testing.T) {
	cases := []struct {
		name    string
		read    string
		present bool
		want    bson.M
	}{
		{"absent leaves list unfiltered", "", false, bson.M{}},
		{"true selects read", "true", true, bson.M{"isRead": true}},
		{"false selects unread", "false", true, bson.M{"isRead": false}},
		{"any other value selects unread", "yes", true, bson.M{"isRead": false}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, messageFilter(tc.read, tc.present))
		})
	}
}

func TestMessagePageEnvelope(t *testing.T) {
	page := messagePage([]models.Message{}, 25, 2, 10)

	assert.Equal(t, int64(25), page["total"])
	assert.Equal(t, 2, page["page"])
	assert.Equal(t, 10, page["limit"])
	assert.Equal(t, int64(3), page["pages"])
}
