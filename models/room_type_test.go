package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInventory(t *testing.T) {
	rt := RoomType{TotalRooms: 5}
	assert.NoError(t, rt.ValidateInventory())

	rt.TotalRooms = 0
	assert.NoError(t, rt.ValidateInventory())

	rt.TotalRooms = -1
	assert.Error(t, rt.ValidateInventory())
}
