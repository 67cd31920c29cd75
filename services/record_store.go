package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	apperrors "hotel-manager/errors"
	"hotel-manager/models"
)

// RecordStore holds every booked room keyed by room number.
// Each method holds the lock for its whole run, and records handed out are copies.
type RecordStore struct {
	mu    sync.RWMutex
	rooms map[int]*models.Record
}

func NewRecordStore() *RecordStore {
	return &RecordStore{rooms: make(map[int]*models.Record)}
}

// Status reports whether roomNo is vacant, booked or outside the hotel.
func (s *RecordStore) Status(roomNo int) models.RoomStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status(roomNo)
}

func (s *RecordStore) status(roomNo int) models.RoomStatus {
	if !ValidRoomNo(roomNo) {
		return models.RoomInvalid
	}
	if _, ok := s.rooms[roomNo]; ok {
		return models.RoomBooked
	}
	return models.RoomVacant
}

// Create books a vacant room and prices the stay.
func (s *RecordStore) Create(roomNo int, name, address, phone string, days int) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status(roomNo) {
	case models.RoomInvalid:
		return nil, roomInvalid(roomNo)
	case models.RoomBooked:
		return nil, apperrors.Wrap(apperrors.ErrRoomOccupied, "room %d is already booked", roomNo)
	}

	roomType, _ := RoomTypeAndRate(roomNo)
	cost, err := BaseCost(roomNo, days)
	if err != nil {
		return nil, err
	}
	rec := &models.Record{
		RoomNo:   roomNo,
		Name:     name,
		Address:  address,
		Phone:    phone,
		Days:     days,
		RoomType: roomType,
		RoomCost: cost,
		FoodBill: 0,
	}
	s.rooms[roomNo] = rec

	out := *rec
	return &out, nil
}

// Get returns a copy of the booking in roomNo.
func (s *RecordStore) Get(roomNo int) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, err := s.lookup(roomNo)
	if err != nil {
		return nil, err
	}
	out := *rec
	return &out, nil
}

// List returns all bookings ordered by room number.
func (s *RecordStore) List() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Record, 0, len(s.rooms))
	for _, rec := range s.rooms {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNo < out[j].RoomNo })
	return out
}

func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// UpdateField sets name, address or phone, or sets days and reprices the room.
func (s *RecordStore) UpdateField(roomNo int, field models.RecordField, value string) (*models.Record, error) {
	switch field {
	case models.FieldName, models.FieldAddress, models.FieldPhone:
	case models.FieldDays:
		days, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidField, "days must be a whole number, got %q", value)
		}
		return s.UpdateDays(roomNo, days)
	default:
		return nil, apperrors.Wrap(apperrors.ErrInvalidField, "field %q cannot be modified", string(field))
	}

	return s.mutate(roomNo, func(rec *models.Record) error {
		switch field {
		case models.FieldName:
			rec.Name = value
		case models.FieldAddress:
			rec.Address = value
		case models.FieldPhone:
			rec.Phone = value
		}
		return nil
	})
}

// UpdateDays changes the stay length and recomputes RoomCost. RoomType never changes.
func (s *RecordStore) UpdateDays(roomNo int, days int) (*models.Record, error) {
	return s.mutate(roomNo, func(rec *models.Record) error {
		cost, err := BaseCost(rec.RoomNo, days)
		if err != nil {
			return err
		}
		if _, ok := addAmount(cost, rec.FoodBill); !ok {
			return apperrors.Wrap(apperrors.ErrInvalidAmount,
				"room %d bill would overflow with a stay of %d days", rec.RoomNo, days)
		}
		rec.Days = days
		rec.RoomCost = cost
		return nil
	})
}

// AddFoodCharge adds amount to the food bill. Negative amounts, and amounts
// that would push the bill or its total past the int64 range, are refused.
func (s *RecordStore) AddFoodCharge(roomNo int, amount int64) (*models.Record, error) {
	if amount < 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidAmount, "food charge %d is negative", amount)
	}
	return s.mutate(roomNo, func(rec *models.Record) error {
		bill, ok := addAmount(rec.FoodBill, amount)
		if ok {
			_, ok = addAmount(rec.RoomCost, bill)
		}
		if !ok {
			return apperrors.Wrap(apperrors.ErrInvalidAmount,
				"food charge %d would overflow the bill of room %d", amount, rec.RoomNo)
		}
		rec.FoodBill = bill
		return nil
	})
}

// Remove checks the guest out and returns the final state of the booking.
func (s *RecordStore) Remove(roomNo int) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.lookup(roomNo)
	if err != nil {
		return nil, err
	}
	delete(s.rooms, roomNo)
	return rec, nil
}

// Replace swaps the whole content for records, used when loading from disk.
func (s *RecordStore) Replace(records []models.Record) {
	rooms := make(map[int]*models.Record, len(records))
	for i := range records {
		rec := records[i]
		rooms[rec.RoomNo] = &rec
	}

	s.mu.Lock()
	s.rooms = rooms
	s.mu.Unlock()
}

func (s *RecordStore) mutate(roomNo int, apply func(rec *models.Record) error) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.lookup(roomNo)
	if err != nil {
		return nil, err
	}
	next := *rec
	if err := apply(&next); err != nil {
		return nil, err
	}
	*rec = next

	out := next
	return &out, nil
}

func (s *RecordStore) lookup(roomNo int) (*models.Record, error) {
	if !ValidRoomNo(roomNo) {
		// no such room is also no such booking
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomInvalid,
			roomInvalidMessage(roomNo), fmt.Errorf("%w: %w", apperrors.ErrRoomInvalid, apperrors.ErrNotFound))
	}
	rec, ok := s.rooms[roomNo]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "room %d is vacant", roomNo)
	}
	return rec, nil
}

func roomInvalid(roomNo int) error {
	return apperrors.NewAppError(apperrors.ErrCodeRoomInvalid, roomInvalidMessage(roomNo), apperrors.ErrRoomInvalid)
}

func roomInvalidMessage(roomNo int) string {
	return fmt.Sprintf("room %d does not exist (valid range %d-%d)", roomNo, models.MinRoomNo, models.MaxRoomNo)
}
