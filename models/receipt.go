package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

// Receipt is the archived bill of a confirmed checkout.
type Receipt struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"column:reference;uniqueIndex;size:36" json:"reference"`

	RoomNo    int    `gorm:"column:room_no;index" json:"roomNo"`
	RoomType  string `gorm:"column:room_type;size:32" json:"roomType"`
	GuestName string `gorm:"column:guest_name;type:text" json:"guestName"`
	Address   string `gorm:"column:address;type:text" json:"address"`
	Phone     string `gorm:"column:phone;size:64" json:"phone"`
	Days      int    `gorm:"column:days" json:"days"`

	RoomCost int64 `gorm:"column:room_cost" json:"roomCost"`
	FoodBill int64 `gorm:"column:food_bill" json:"foodBill"`
	Total    int64 `gorm:"column:total" json:"total"`

	// line items, see ChargeLine
	Charges datatypes.JSON `gorm:"column:charges" json:"charges,omitempty"`

	CheckedOutAt time.Time `gorm:"column:checked_out_at;index" json:"checkedOutAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ChargeLine is one entry of Receipt.Charges.
type ChargeLine struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Rate     int64  `json:"rate"`
	Amount   int64  `json:"amount"`
}

// ChargeLines decodes Charges.
func (r Receipt) ChargeLines() ([]ChargeLine, error) {
	if len(r.Charges) == 0 {
		return nil, nil
	}
	var lines []ChargeLine
	if err := json.Unmarshal(r.Charges, &lines); err != nil {
		return nil, fmt.Errorf("decode receipt %s charges: %w", r.Reference, err)
	}
	return lines, nil
}
