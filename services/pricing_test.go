package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "hotel-manager/errors"
	"hotel-manager/models"
)

func TestRoomTypeAndRate_Bands(t *testing.T) {
	for roomNo := 1; roomNo <= 100; roomNo++ {
		roomType, rate := RoomTypeAndRate(roomNo)
		switch {
		case roomNo <= 50:
			assert.Equal(t, models.RoomTypeDeluxe, roomType, "room %d", roomNo)
			assert.Equal(t, int64(10000), rate, "room %d", roomNo)
		case roomNo <= 80:
			assert.Equal(t, models.RoomTypeExecutive, roomType, "room %d", roomNo)
			assert.Equal(t, int64(12500), rate, "room %d", roomNo)
		default:
			assert.Equal(t, models.RoomTypePresidential, roomType, "room %d", roomNo)
			assert.Equal(t, int64(15000), rate, "room %d", roomNo)
		}
	}
}

func TestRoomTypeAndRate_BandEdges(t *testing.T) {
	cases := map[int]models.RoomType{
		1:   models.RoomTypeDeluxe,
		50:  models.RoomTypeDeluxe,
		51:  models.RoomTypeExecutive,
		80:  models.RoomTypeExecutive,
		81:  models.RoomTypePresidential,
		100: models.RoomTypePresidential,
	}
	for roomNo, want := range cases {
		got, _ := RoomTypeAndRate(roomNo)
		assert.Equal(t, want, got, "room %d", roomNo)
	}
}

func TestRoomTypeAndRate_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { RoomTypeAndRate(0) })
	assert.Panics(t, func() { RoomTypeAndRate(101) })
	assert.Panics(t, func() { RoomTypeAndRate(-5) })
}

func mealCharge(t *testing.T, meal models.Meal, people int) int64 {
	t.Helper()
	charge, err := MealCharge(meal, people)
	require.NoError(t, err)
	return charge
}

func TestBaseCost(t *testing.T) {
	for _, tc := range []struct {
		roomNo, days int
		want         int64
	}{
		{1, 3, 30000},
		{55, 2, 25000},
		{100, 10, 150000},
		{20, 0, 0},
		{81, models.MaxStayDays, 54750000},
	} {
		cost, err := BaseCost(tc.roomNo, tc.days)
		require.NoError(t, err)
		assert.Equal(t, tc.want, cost, "room %d for %d days", tc.roomNo, tc.days)
	}
}

func TestBaseCost_Overflow(t *testing.T) {
	_, err := BaseCost(90, 1_000_000_000_000_000)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = BaseCost(1, math.MinInt64/2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	cost, err := BaseCost(1, math.MaxInt64/10000)
	require.NoError(t, err)
	assert.Positive(t, cost)
}

func TestMealRateAndCharge(t *testing.T) {
	assert.Equal(t, int64(500), MealRate(models.MealBreakfast))
	assert.Equal(t, int64(1000), MealRate(models.MealLunch))
	assert.Equal(t, int64(1200), MealRate(models.MealDinner))

	assert.Equal(t, int64(1000), mealCharge(t, models.MealBreakfast, 2))
	assert.Equal(t, int64(3600), mealCharge(t, models.MealDinner, 3))
	assert.Equal(t, int64(0), mealCharge(t, models.MealLunch, 0))
	assert.Equal(t, int64(600000), mealCharge(t, models.MealDinner, models.MaxPartySize))

	assert.Panics(t, func() { MealRate(models.Meal(9)) })
}

func TestMealCharge_Refused(t *testing.T) {
	_, err := MealCharge(models.MealDinner, 8_000_000_000_000_000)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = MealCharge(models.MealBreakfast, -1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestParseMeal(t *testing.T) {
	cases := map[string]models.Meal{
		"1":         models.MealBreakfast,
		" 2 ":       models.MealLunch,
		"3":         models.MealDinner,
		"breakfast": models.MealBreakfast,
		"LUNCH":     models.MealLunch,
		"Dinner":    models.MealDinner,
	}
	for input, want := range cases {
		got, err := ParseMeal(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, bad := range []string{"", "0", "4", "brunch"} {
		_, err := ParseMeal(bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, bad)
	}
}
