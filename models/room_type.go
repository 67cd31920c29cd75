package models

import "strings"

// RoomType is fixed by the band a room number falls in.
type RoomType uint8

const (
	RoomTypeUnknown RoomType = iota
	RoomTypeDeluxe
	RoomTypeExecutive
	RoomTypePresidential
)

func (t RoomType) String() string {
	switch t {
	case RoomTypeDeluxe:
		return "Deluxe"
	case RoomTypeExecutive:
		return "Executive"
	case RoomTypePresidential:
		return "Presidential"
	}
	return "Unknown"
}

// Valid reports whether t is one of the three bookable types.
func (t RoomType) Valid() bool {
	return t >= RoomTypeDeluxe && t <= RoomTypePresidential
}

// RoomBand is a contiguous range of room numbers sharing a type and daily rate.
type RoomBand struct {
	First int
	Last  int
	Type  RoomType
	Rate  int64
}

// RoomBands covers 1..100 without gaps or overlaps.
var RoomBands = []RoomBand{
	{First: 1, Last: 50, Type: RoomTypeDeluxe, Rate: 10000},
	{First: 51, Last: 80, Type: RoomTypeExecutive, Rate: 12500},
	{First: 81, Last: 100, Type: RoomTypePresidential, Rate: 15000},
}

const (
	MinRoomNo = 1
	MaxRoomNo = 100
)

// Largest stay and party the front desk will take in one booking or order.
const (
	MaxStayDays  = 3650
	MaxPartySize = 500
)

// RoomStatus is the occupancy of a room number.
type RoomStatus int

const (
	RoomVacant RoomStatus = iota
	RoomBooked
	RoomInvalid
)

func (s RoomStatus) String() string {
	switch s {
	case RoomVacant:
		return "Vacant"
	case RoomBooked:
		return "Booked"
	}
	return "Invalid"
}

// Meal is a restaurant order type, charged per person.
type Meal int

const (
	MealBreakfast Meal = iota + 1
	MealLunch
	MealDinner
)

var mealNames = map[Meal]string{
	MealBreakfast: "Breakfast",
	MealLunch:     "Lunch",
	MealDinner:    "Dinner",
}

func (m Meal) String() string {
	if name, ok := mealNames[m]; ok {
		return name
	}
	return "Unknown"
}

// MealFromName matches a meal by name, ignoring case.
func MealFromName(name string) (Meal, bool) {
	name = strings.TrimSpace(name)
	for m, n := range mealNames {
		if strings.EqualFold(n, name) {
			return m, true
		}
	}
	return 0, false
}
