package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-manager/models"
)

// ErrArchiveDisabled is returned when no archive database is configured.
var ErrArchiveDisabled = errors.New("checkout archive is disabled")

// ReceiptService archives the bills of confirmed checkouts.
type ReceiptService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewReceiptService(db *gorm.DB) *ReceiptService {
	return &ReceiptService{DB: db, Now: time.Now}
}

// Enabled reports whether receipts are stored anywhere.
func (s *ReceiptService) Enabled() bool {
	return s != nil && s.DB != nil
}

// Archive stores the final bill of rec.
func (s *ReceiptService) Archive(rec models.Record) (*models.Receipt, error) {
	if !s.Enabled() {
		return nil, ErrArchiveDisabled
	}

	charges, err := json.Marshal(chargeLines(rec))
	if err != nil {
		return nil, fmt.Errorf("encode receipt charges: %w", err)
	}

	receipt := models.Receipt{
		Reference:    uuid.NewString(),
		RoomNo:       rec.RoomNo,
		RoomType:     rec.RoomType.String(),
		GuestName:    rec.Name,
		Address:      rec.Address,
		Phone:        rec.Phone,
		Days:         rec.Days,
		RoomCost:     rec.RoomCost,
		FoodBill:     rec.FoodBill,
		Total:        rec.Total(),
		Charges:      datatypes.JSON(charges),
		CheckedOutAt: s.Now().UTC(),
	}
	if err := s.DB.Create(&receipt).Error; err != nil {
		return nil, fmt.Errorf("failed to archive receipt for room %d: %w", rec.RoomNo, err)
	}
	return &receipt, nil
}

func chargeLines(rec models.Record) []models.ChargeLine {
	_, rate := RoomTypeAndRate(rec.RoomNo)
	lines := []models.ChargeLine{{
		Item:     rec.RoomType.String() + " room",
		Quantity: rec.Days,
		Rate:     rate,
		Amount:   rec.RoomCost,
	}}
	if rec.FoodBill > 0 {
		lines = append(lines, models.ChargeLine{
			Item:     "Restaurant",
			Quantity: 1,
			Rate:     rec.FoodBill,
			Amount:   rec.FoodBill,
		})
	}
	return lines
}

// GetAll returns archived receipts, newest first.
func (s *ReceiptService) GetAll() ([]models.Receipt, error) {
	if !s.Enabled() {
		return nil, ErrArchiveDisabled
	}
	var receipts []models.Receipt
	err := s.DB.Order("checked_out_at DESC").Order("id DESC").Find(&receipts).Error
	return receipts, err
}

// GetByRoom returns archived receipts of one room, newest first.
func (s *ReceiptService) GetByRoom(roomNo int) ([]models.Receipt, error) {
	if !s.Enabled() {
		return nil, ErrArchiveDisabled
	}
	var receipts []models.Receipt
	err := s.DB.Where("room_no = ?", roomNo).Order("checked_out_at DESC").Order("id DESC").Find(&receipts).Error
	return receipts, err
}
