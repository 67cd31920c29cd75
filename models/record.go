package models

// Record is one booking, keyed by RoomNo.
// RoomType and RoomCost are derived; FoodBill only grows.
type Record struct {
	RoomNo   int
	Name     string
	Address  string
	Phone    string
	Days     int
	RoomType RoomType
	RoomCost int64
	FoodBill int64
}

// Total is what the guest owes at checkout.
func (r Record) Total() int64 {
	return r.RoomCost + r.FoodBill
}

// RecordField names a mutable field of a Record.
type RecordField string

const (
	FieldName    RecordField = "name"
	FieldAddress RecordField = "address"
	FieldPhone   RecordField = "phone"
	FieldDays    RecordField = "days"
)

// EditableFields lists fields in menu order.
var EditableFields = []RecordField{FieldName, FieldAddress, FieldPhone, FieldDays}
