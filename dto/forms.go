package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "hotel-manager/errors"
	"hotel-manager/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BookingForm is what the front desk collects for a new booking.
// Guest text fields are free-form and may be empty.
type BookingForm struct {
	RoomNo  int `validate:"min=1,max=100"`
	Name    string
	Address string
	Phone   string
	Days    int `validate:"min=1,max=3650"`
}

// FoodOrderForm is one restaurant order charged to a room.
type FoodOrderForm struct {
	RoomNo int         `validate:"min=1,max=100"`
	Meal   models.Meal `validate:"min=1,max=3"`
	People int         `validate:"min=0,max=500"`
}

// EditForm is a single field change.
type EditForm struct {
	RoomNo int                `validate:"min=1,max=100"`
	Field  models.RecordField `validate:"oneof=name address phone days"`
	Value  string
}

func (f BookingForm) Validate() error {
	return check(f)
}

func (f FoodOrderForm) Validate() error {
	return check(f)
}

func (f EditForm) Validate() error {
	if err := check(f); err != nil {
		return err
	}
	if f.Field == models.FieldDays {
		if err := validate.Var(strings.TrimSpace(f.Value), "required,number"); err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeValidation,
				fmt.Sprintf("days must be a whole number, got %q", f.Value), apperrors.ErrValidation)
		}
	}
	return nil
}

// ValidateDays checks a new stay length.
func ValidateDays(days int) error {
	if err := validate.Var(days, fmt.Sprintf("min=1,max=%d", models.MaxStayDays)); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeValidation,
			fmt.Sprintf("number of days must be between 1 and %d, got %d", models.MaxStayDays, days),
			apperrors.ErrValidation)
	}
	return nil
}

// ParseDays reads an edited stay length and checks it like a booking's.
func ParseDays(value string) (int, error) {
	value = strings.TrimSpace(value)
	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeValidation,
			fmt.Sprintf("days must be a whole number between 1 and %d, got %q", models.MaxStayDays, value),
			apperrors.ErrValidation)
	}
	return days, ValidateDays(days)
}

func check(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, err.Error(), apperrors.ErrValidation)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return apperrors.NewAppError(apperrors.ErrCodeValidation, strings.Join(msgs, "; "), apperrors.ErrValidation)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", fe.Field(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
