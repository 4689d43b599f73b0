package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	t.Run("valid hex", func(t *testing.T) {
		id, err := ParseID("5f1d7a2b9c8e4a0012345678")
		require.NoError(t, err)
		assert.Equal(t, "5f1d7a2b9c8e4a0012345678", id.Hex())
	})

	for _, raw := range []string{"", "123", "not-an-id", "zzzzzzzzzzzzzzzzzzzzzzzz", "5f1d7a2b9c8e4a00123456789"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			id, err := ParseID(raw)
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
			assert.Equal(t, primitive.NilObjectID, id)
		})
	}
}

func TestSequentialIDs(t *testing.T) {
	next := SequentialIDs()

	assert.Equal(t, "000000000000000000000001", next().Hex())
	assert.Equal(t, "000000000000000000000002", next().Hex())
	assert.Equal(t, "000000000000000000000003", next().Hex())

	other := SequentialIDs()
	assert.Equal(t, "000000000000000000000001", other().Hex(), "generators do not share state")
}

func TestNewIDIsUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
