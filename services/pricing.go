package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "hotel-manager/errors"
	"hotel-manager/models"
)

var mealRates = map[models.Meal]int64{
	models.MealBreakfast: 500,
	models.MealLunch:     1000,
	models.MealDinner:    1200,
}

// ValidRoomNo reports whether roomNo lies in a room band.
func ValidRoomNo(roomNo int) bool {
	return roomNo >= models.MinRoomNo && roomNo <= models.MaxRoomNo
}

// RoomTypeAndRate returns the type and per-day rate of roomNo.
// Callers must validate the range first; an out-of-range room panics.
func RoomTypeAndRate(roomNo int) (models.RoomType, int64) {
	for _, band := range models.RoomBands {
		if roomNo >= band.First && roomNo <= band.Last {
			return band.Type, band.Rate
		}
	}
	panic(fmt.Sprintf("pricing: room %d outside %d-%d", roomNo, models.MinRoomNo, models.MaxRoomNo))
}

// BaseCost is the room charge for a stay of days. A stay whose cost does not
// fit in an int64 fails with ErrInvalidAmount.
func BaseCost(roomNo int, days int) (int64, error) {
	_, rate := RoomTypeAndRate(roomNo)
	cost, ok := mulAmount(int64(days), rate)
	if !ok {
		return 0, apperrors.Wrap(apperrors.ErrInvalidAmount,
			"a stay of %d days in room %d is too long to price", days, roomNo)
	}
	return cost, nil
}

// MealRate is the per-person price of meal. Unknown meals panic.
func MealRate(meal models.Meal) int64 {
	rate, ok := mealRates[meal]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown meal %d", int(meal)))
	}
	return rate
}

// MealCharge prices an order of meal for people guests; zero people is a no-op order.
func MealCharge(meal models.Meal, people int) (int64, error) {
	if people < 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidAmount, "%d people is negative", people)
	}
	charge, ok := mulAmount(int64(people), MealRate(meal))
	if !ok {
		return 0, apperrors.Wrap(apperrors.ErrInvalidAmount,
			"an order of %s for %d people is too large to price", meal, people)
	}
	return charge, nil
}

// mulAmount multiplies a count by a positive rate, reporting int64 overflow.
func mulAmount(n, rate int64) (int64, bool) {
	if n > math.MaxInt64/rate || n < math.MinInt64/rate {
		return 0, false
	}
	return n * rate, true
}

// addAmount adds two amounts, reporting int64 overflow.
func addAmount(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// ParseMeal accepts a menu number (1-3) or a meal name.
func ParseMeal(input string) (models.Meal, error) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		meal := models.Meal(n)
		if _, ok := mealRates[meal]; ok {
			return meal, nil
		}
	} else if meal, ok := models.MealFromName(input); ok {
		return meal, nil
	}
	return 0, apperrors.NewAppError(apperrors.ErrCodeValidation,
		fmt.Sprintf("invalid choice for meal: %q", input), apperrors.ErrValidation)
}
