package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.NotEqual(t, uuid.Nil.String(), id1.String())
	assert.False(t, id1.IsEqual(id2))
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical", input: canonical},
		{name: "braces", input: "{" + canonical + "}"},
		{name: "urn prefix", input: "urn:uuid:" + canonical},
		{name: "garbage", input: "BKG1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "nil uuid is not constructed", input: uuid.Nil.String(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, canonical, id.String())
		})
	}
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_BytesRoundTrip(t *testing.T) {
	id := kernel.NewUUID()

	parsed, err := kernel.UUIDFromString(id.Bytes().String())

	require.NoError(t, err)
	assert.True(t, id.IsEqual(parsed))
}
