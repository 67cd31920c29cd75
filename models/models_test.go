package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomBands_CoverAllRooms(t *testing.T) {
	next := MinRoomNo
	for _, b := range RoomBands {
		assert.Equal(t, next, b.First, "band %s starts after a gap or overlap", b.Type)
		assert.True(t, b.Type.Valid())
		next = b.Last + 1
	}
	assert.Equal(t, MaxRoomNo+1, next)
}

func TestRoomType_String(t *testing.T) {
	assert.Equal(t, "Deluxe", RoomTypeDeluxe.String())
	assert.Equal(t, "Executive", RoomTypeExecutive.String())
	assert.Equal(t, "Presidential", RoomTypePresidential.String())
	assert.Equal(t, "Unknown", RoomType(9).String())
	assert.False(t, RoomTypeUnknown.Valid())
}

func TestMealFromName(t *testing.T) {
	m, ok := MealFromName(" breakfast ")
	assert.True(t, ok)
	assert.Equal(t, MealBreakfast, m)

	_, ok = MealFromName("supper")
	assert.False(t, ok)
	assert.Equal(t, "Dinner", MealDinner.String())
}

func TestRecord_Total(t *testing.T) {
	assert.Equal(t, int64(32200), Record{RoomCost: 30000, FoodBill: 2200}.Total())
}

func TestRoomStatus_String(t *testing.T) {
	assert.Equal(t, "Vacant", RoomVacant.String())
	assert.Equal(t, "Booked", RoomBooked.String())
	assert.Equal(t, "Invalid", RoomInvalid.String())
}
