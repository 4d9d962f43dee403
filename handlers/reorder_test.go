package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestReorderModels(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	models, err := reorderModels([]reorderItem{
		{ID: b.Hex(), Order: 0},
		{ID: c.Hex(), Order: 1},
		{ID: a.Hex(), Order: 2},
	})
	require.NoError(t, err)
	require.Len(t, models, 3)

	want := []struct {
		id    primitive.ObjectID
		order int
	}{{b, 0}, {c, 1}, {a, 2}}

	for i, m := range models {
		update, ok := m.(*mongo.UpdateOneModel)
		require.True(t, ok)

		filter := update.Filter.(bson.M)
		assert.Equal(t, want[i].id, filter["_id"])

		set := update.Update.(bson.M)["$set"].(bson.M)
		assert.Equal(t, want[i].order, set["order"])
		assert.Contains(t, set, "updatedAt")
	}
}

func TestReorderModelsInvalidID(t *testing.T) {
	_, err := reorderModels([]reorderItem{{ID: "not-a-hex-id", Order: 0}})
	assert.Error(t, err)
}

// The wire shape is {"order": [{id, order}, ...]}.
func TestReorderRequestBindsOrderKey(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	c, _ := jsonContext(t, map[string]any{
		"order": []map[string]any{{"id": id, "order": 1}},
	})

	var req reorderRequest
	require.NoError(t, c.ShouldBindJSON(&req))
	require.Len(t, req.Order, 1)
	assert.Equal(t, id, req.Order[0].ID)
	assert.Equal(t, 1, req.Order[0].Order)
}

func TestReorderRequestRejectsMissingOrderKey(t *testing.T) {
	c, _ := jsonContext(t, map[string]any{
		"items": []map[string]any{{"id": primitive.NewObjectID().Hex(), "order": 1}},
	})

	var req reorderRequest
	assert.Error(t, c.ShouldBindJSON(&req))
}
