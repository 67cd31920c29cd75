package controllers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hotel-manager/dto"
	apperrors "hotel-manager/errors"
	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

// Prompter is the operator's side of an action: questions in, answers and results out.
type Prompter interface {
	Ask(label string) (string, error)
	AskInt(label string) (int, error)
	Confirm(label string) (bool, error)
	Out() io.Writer
}

// FrontDeskController runs the front desk actions against the record store.
type FrontDeskController struct {
	Store    *services.RecordStore
	Receipts *services.ReceiptService
	Search   *services.GuestSearch
}

func NewFrontDeskController(store *services.RecordStore, receipts *services.ReceiptService) *FrontDeskController {
	return &FrontDeskController{
		Store:    store,
		Receipts: receipts,
		Search:   services.NewGuestSearch(store),
	}
}

// ----------------------------------------------------
// 1. Book a room
// ----------------------------------------------------

func (fc *FrontDeskController) BookRoom(p Prompter) error {
	out := p.Out()
	fmt.Fprintln(out, "\n BOOK A ROOM")
	fmt.Fprintln(out, " -----------")
	utils.RoomBandTable(out)

	roomNo, err := p.AskInt("\n Room Number (1-100): ")
	if err != nil {
		return fail(out, err)
	}

	switch fc.Store.Status(roomNo) {
	case models.RoomBooked:
		return fail(out, apperrors.Wrap(apperrors.ErrRoomOccupied, "room %d is already booked", roomNo))
	case models.RoomInvalid:
		return fail(out, apperrors.Wrap(apperrors.ErrRoomInvalid,
			"room %d does not exist (valid range %d-%d)", roomNo, models.MinRoomNo, models.MaxRoomNo))
	}

	form := dto.BookingForm{RoomNo: roomNo}
	if form.Name, err = p.Ask(" Name: "); err != nil {
		return fail(out, err)
	}
	if form.Address, err = p.Ask(" Address: "); err != nil {
		return fail(out, err)
	}
	if form.Phone, err = p.Ask(" Phone Number: "); err != nil {
		return fail(out, err)
	}
	if form.Days, err = p.AskInt(" Number of Days: "); err != nil {
		return fail(out, err)
	}
	if err := form.Validate(); err != nil {
		return fail(out, err)
	}

	rec, err := fc.Store.Create(form.RoomNo, form.Name, form.Address, form.Phone, form.Days)
	if err != nil {
		return fail(out, err)
	}

	utils.LogInfo("booked room %d (%s) for %d days, cost %d", rec.RoomNo, rec.RoomType, rec.Days, rec.RoomCost)
	utils.Success(out, "Room %d has been booked for %s.", rec.RoomNo, rec.Name)
	return nil
}

// ----------------------------------------------------
// 2. Customer information
// ----------------------------------------------------

func (fc *FrontDeskController) ShowRecord(p Prompter) error {
	out := p.Out()
	roomNo, err := p.AskInt("\n Enter Room Number to display: ")
	if err != nil {
		return fail(out, err)
	}

	rec, err := fc.Store.Get(roomNo)
	if err != nil {
		return fail(out, err)
	}
	utils.RenderRecord(out, *rec)
	return nil
}

// ----------------------------------------------------
// 3. Rooms allotted
// ----------------------------------------------------

func (fc *FrontDeskController) ListRecords(p Prompter) error {
	utils.RenderRecordTable(p.Out(), "LIST OF ALLOTTED ROOMS", fc.Store.List())
	return nil
}

// ----------------------------------------------------
// 4. Edit customer details (modify or check out)
// ----------------------------------------------------

func (fc *FrontDeskController) EditRecord(p Prompter) error {
	out := p.Out()
	fmt.Fprintln(out, "\n EDIT MENU:")
	fmt.Fprintln(out, " ----------")
	fmt.Fprintln(out, " 1. Modify Customer Information.")
	fmt.Fprintln(out, " 2. Customer Check Out.")

	choice, err := p.AskInt("\n Enter your choice: ")
	if err != nil {
		return fail(out, err)
	}
	switch choice {
	case 1:
		return fc.ModifyRecord(p)
	case 2:
		return fc.CheckOut(p)
	}
	return fail(out, wrongChoice(choice))
}

// ModifyRecord asks which field, then which room, then the new value.
func (fc *FrontDeskController) ModifyRecord(p Prompter) error {
	out := p.Out()
	fmt.Fprintln(out, "\n MODIFY MENU:")
	fmt.Fprintln(out, " ------------")
	fmt.Fprintln(out, " 1. Modify Name")
	fmt.Fprintln(out, " 2. Modify Address")
	fmt.Fprintln(out, " 3. Modify Phone Number")
	fmt.Fprintln(out, " 4. Modify Number of Days of Stay")

	choice, err := p.AskInt("\n Enter Your Choice: ")
	if err != nil {
		return fail(out, err)
	}
	if choice < 1 || choice > len(models.EditableFields) {
		return fail(out, wrongChoice(choice))
	}
	field := models.EditableFields[choice-1]

	roomNo, err := p.AskInt("\n Enter Room Number to modify: ")
	if err != nil {
		return fail(out, err)
	}
	if _, err := fc.Store.Get(roomNo); err != nil {
		return fail(out, err)
	}

	form := dto.EditForm{RoomNo: roomNo, Field: field}
	if form.Value, err = p.Ask(fmt.Sprintf(" Enter New %s: ", fieldLabel(field))); err != nil {
		return fail(out, err)
	}
	if err := form.Validate(); err != nil {
		return fail(out, err)
	}

	var rec *models.Record
	if field == models.FieldDays {
		days, err := dto.ParseDays(form.Value)
		if err != nil {
			return fail(out, err)
		}
		rec, err = fc.Store.UpdateDays(roomNo, days)
	} else {
		rec, err = fc.Store.UpdateField(roomNo, field, form.Value)
	}
	if err != nil {
		return fail(out, err)
	}

	utils.LogInfo("room %d: %s modified", rec.RoomNo, field)
	utils.Success(out, "Customer %s has been modified.", fieldLabel(field))
	return nil
}

// CheckOut shows the bill and removes the booking once the operator confirms.
func (fc *FrontDeskController) CheckOut(p Prompter) error {
	out := p.Out()
	roomNo, err := p.AskInt("\n Enter Room Number to check out: ")
	if err != nil {
		return fail(out, err)
	}

	rec, err := fc.Store.Get(roomNo)
	if err != nil {
		return fail(out, err)
	}
	utils.RenderBill(out, *rec)

	ok, err := p.Confirm("\n Do you want to check out this customer (y/n): ")
	if err != nil {
		return fail(out, err)
	}
	if !ok {
		utils.Success(out, "Checkout cancelled.")
		return nil
	}

	final, err := fc.Store.Remove(roomNo)
	if err != nil {
		return fail(out, err)
	}
	utils.LogInfo("room %d checked out, total %d", final.RoomNo, final.Total())

	if fc.Receipts.Enabled() {
		receipt, err := fc.Receipts.Archive(*final)
		if err != nil {
			// the checkout stands; only the history entry is lost
			utils.LogError("archive checkout of room %d: %v", final.RoomNo, err)
			fmt.Fprintf(out, "\n Warning: receipt for room %d was not archived.\n", final.RoomNo)
		} else {
			fmt.Fprintf(out, "\n Receipt reference: %s\n", receipt.Reference)
		}
	}

	utils.Success(out, "Customer Checked Out. Room %d is now vacant.", final.RoomNo)
	return nil
}

// ----------------------------------------------------
// 5. Order food
// ----------------------------------------------------

func (fc *FrontDeskController) OrderFood(p Prompter) error {
	out := p.Out()
	roomNo, err := p.AskInt("\n Enter Room Number for the order: ")
	if err != nil {
		return fail(out, err)
	}
	if _, err := fc.Store.Get(roomNo); err != nil {
		return fail(out, err)
	}

	fmt.Fprintln(out, "\n RESTAURANT MENU:")
	fmt.Fprintln(out, " ----------------")
	for _, meal := range []models.Meal{models.MealBreakfast, models.MealLunch, models.MealDinner} {
		fmt.Fprintf(out, " %d. Order %s (%d per person)\n", int(meal), meal, services.MealRate(meal))
	}

	choice, err := p.Ask("\n Enter your choice: ")
	if err != nil {
		return fail(out, err)
	}
	meal, err := services.ParseMeal(choice)
	if err != nil {
		return fail(out, err)
	}

	form := dto.FoodOrderForm{RoomNo: roomNo, Meal: meal}
	if form.People, err = p.AskInt(" Enter number of people: "); err != nil {
		return fail(out, err)
	}
	if err := form.Validate(); err != nil {
		return fail(out, err)
	}

	charge, err := services.MealCharge(form.Meal, form.People)
	if err != nil {
		return fail(out, err)
	}
	rec, err := fc.Store.AddFoodCharge(form.RoomNo, charge)
	if err != nil {
		return fail(out, err)
	}

	utils.LogInfo("room %d: %s x%d charged %d", rec.RoomNo, form.Meal, form.People, charge)
	utils.Success(out, "%s for %d ordered. %d added, food bill for room %d is now %d.",
		form.Meal, form.People, charge, rec.RoomNo, rec.FoodBill)
	return nil
}

// ----------------------------------------------------
// 7. Find guest
// ----------------------------------------------------

func (fc *FrontDeskController) FindGuest(p Prompter) error {
	out := p.Out()
	query, err := p.Ask("\n Guest name: ")
	if err != nil {
		return fail(out, err)
	}

	matches := fc.Search.Find(query)
	if len(matches) == 0 {
		fmt.Fprintf(out, "\n No guest matches %q.\n", strings.TrimSpace(query))
		if suggestion := fc.Search.Suggest(query); suggestion != "" {
			fmt.Fprintf(out, " Did you mean %q?\n", suggestion)
		}
		return nil
	}

	records := make([]models.Record, 0, len(matches))
	for _, m := range matches {
		records = append(records, m.Record)
	}
	utils.RenderRecordTable(out, "MATCHING GUESTS", records)
	return nil
}

// ----------------------------------------------------
// 8. Checkout history
// ----------------------------------------------------

func (fc *FrontDeskController) CheckoutHistory(p Prompter) error {
	out := p.Out()
	if !fc.Receipts.Enabled() {
		fmt.Fprintln(out, "\n Checkout archive is disabled.")
		return nil
	}

	filter, err := p.Ask("\n Room Number (blank for all rooms): ")
	if err != nil {
		return fail(out, err)
	}

	var receipts []models.Receipt
	if filter = strings.TrimSpace(filter); filter == "" {
		receipts, err = fc.Receipts.GetAll()
	} else {
		roomNo, convErr := strconv.Atoi(filter)
		if convErr != nil {
			return fail(out, apperrors.NewAppError(apperrors.ErrCodeValidation,
				fmt.Sprintf("%q is not a number", filter), apperrors.ErrValidation))
		}
		if !services.ValidRoomNo(roomNo) {
			return fail(out, apperrors.Wrap(apperrors.ErrRoomInvalid,
				"room %d does not exist (valid range %d-%d)", roomNo, models.MinRoomNo, models.MaxRoomNo))
		}
		receipts, err = fc.Receipts.GetByRoom(roomNo)
	}
	if err != nil {
		return fail(out, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not read checkout history", err))
	}
	utils.RenderReceipts(out, receipts)
	return nil
}

// fail reports err to the operator and hands it back for logging.
// End of input is passed through silently so the menu can stop.
func fail(out io.Writer, err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	utils.Failure(out, err)
	return err
}

func wrongChoice(choice int) error {
	return apperrors.NewAppError(apperrors.ErrCodeValidation,
		fmt.Sprintf("%d is not a valid choice", choice), apperrors.ErrValidation)
}

func fieldLabel(field models.RecordField) string {
	switch field {
	case models.FieldName:
		return "Name"
	case models.FieldAddress:
		return "Address"
	case models.FieldPhone:
		return "Phone Number"
	case models.FieldDays:
		return "Number of Days of Stay"
	}
	return string(field)
}
