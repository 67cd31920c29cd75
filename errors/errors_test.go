package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	err := Wrap(ErrRoomOccupied, "room %d is already booked", 7)

	assert.Equal(t, ErrCodeRoomOccupied, err.Code)
	assert.Equal(t, "room 7 is already booked", err.Message)
	assert.True(t, errors.Is(err, ErrRoomOccupied))
	assert.Equal(t, "[ROOM_OCCUPIED] room 7 is already booked: room is occupied", err.Error())
}

func TestCode(t *testing.T) {
	assert.Equal(t, ErrorCode(""), Code(nil))
	assert.Equal(t, ErrCodeNotFound, Code(Wrap(ErrNotFound, "room 3 is vacant")))
	assert.Equal(t, ErrCodeCorruptData, Code(fmt.Errorf("load: %w", ErrCorruptData)))
	assert.Equal(t, ErrCodeRoomInvalid, Code(fmt.Errorf("outer: %w", Wrap(ErrRoomInvalid, "room 0"))))
	assert.Equal(t, ErrCodeUnknown, Code(errors.New("disk on fire")))
}

func TestGetAppError(t *testing.T) {
	inner := NewAppError(ErrCodeValidation, "bad days", nil)
	wrapped := fmt.Errorf("book: %w", inner)

	assert.Same(t, inner, GetAppError(wrapped))
	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.Equal(t, "[VALIDATION_ERROR] bad days", inner.Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "room 4 is vacant", Message(Wrap(ErrNotFound, "room 4 is vacant")))
	assert.Equal(t, "plain", Message(errors.New("plain")))
}
