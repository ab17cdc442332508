package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSuccessResponse(t *testing.T) {
	payload := map[string]string{"name": "Falcon-1"}

	resp := CreateSuccessResponse(payload)

	assert.True(t, resp.Success)
	assert.Equal(t, payload, resp.Data)
	if assert.NotNil(t, resp.Meta) {
		assert.False(t, resp.Meta.Timestamp.IsZero())
	}
}

func TestCreateMessageResponse(t *testing.T) {
	resp := CreateMessageResponse("Mission and associated waypoints deleted successfully")

	assert.True(t, resp.Success)
	assert.Equal(t, map[string]string{
		"message": "Mission and associated waypoints deleted successfully",
	}, resp.Data)
}

func TestCreateErrorResponse(t *testing.T) {
	resp := CreateErrorResponse("NOT_FOUND", "mission missing")

	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "mission missing", resp.Error.Message)
}
