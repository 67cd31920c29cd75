package utils

import (
	"fmt"
	"io"
	"text/tabwriter"

	apperrors "hotel-manager/errors"
	"hotel-manager/models"
)

// Success prints a confirmation line.
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "\n "+format+"\n", args...)
}

// Failure prints the operator-facing reason of err.
func Failure(w io.Writer, err error) {
	fmt.Fprintf(w, "\n Sorry, %s. [%s]\n", apperrors.Message(err), apperrors.Code(err))
}

// RoomBandTable prints which room numbers belong to which type.
func RoomBandTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " Rooms\tRoom Type\tPer Day")
	for _, b := range models.RoomBands {
		fmt.Fprintf(tw, " %d-%d\t%s\t%d\n", b.First, b.Last, b.Type, b.Rate)
	}
	tw.Flush()
}

// RenderRecord prints one booking with its grand total.
func RenderRecord(w io.Writer, rec models.Record) {
	fmt.Fprintf(w, "\n Customer Details\n ----------------\n")
	fmt.Fprintf(w, " Room Number: %d\n", rec.RoomNo)
	fmt.Fprintf(w, " Name: %s\n", rec.Name)
	fmt.Fprintf(w, " Address: %s\n", rec.Address)
	fmt.Fprintf(w, " Phone Number: %s\n", rec.Phone)
	fmt.Fprintf(w, " Staying for: %d days\n", rec.Days)
	fmt.Fprintf(w, " Room Type: %s\n", rec.RoomType)
	fmt.Fprintf(w, " Total Room Cost: %d\n", rec.RoomCost)
	fmt.Fprintf(w, " Total Food Bill: %d\n", rec.FoodBill)
	fmt.Fprintf(w, " Grand Total: %d\n", rec.Total())
}

// RenderBill prints what is shown before a checkout is confirmed.
func RenderBill(w io.Writer, rec models.Record) {
	fmt.Fprintf(w, "\n Name: %s\n Address: %s\n Phone Number: %s\n", rec.Name, rec.Address, rec.Phone)
	fmt.Fprintf(w, " Room Cost: %d\n Food Bill: %d\n", rec.RoomCost, rec.FoodBill)
	fmt.Fprintf(w, " Your total bill is: Rs. %d\n", rec.Total())
}

// RenderRecordTable prints all bookings, one row each.
func RenderRecordTable(w io.Writer, title string, records []models.Record) {
	fmt.Fprintf(w, "\n %s\n\n", title)
	if len(records) == 0 {
		fmt.Fprintln(w, " No rooms currently allotted.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " Room No\tGuest Name\tAddress\tRoom Type\tContact No.\tDays\tTotal")
	for _, rec := range records {
		fmt.Fprintf(tw, " %d\t%s\t%s\t%s\t%s\t%d\t%d\n",
			rec.RoomNo, rec.Name, rec.Address, rec.RoomType, rec.Phone, rec.Days, rec.Total())
	}
	tw.Flush()
}

// RenderReceipts prints archived checkouts.
func RenderReceipts(w io.Writer, receipts []models.Receipt) {
	fmt.Fprintf(w, "\n CHECKOUT HISTORY\n\n")
	if len(receipts) == 0 {
		fmt.Fprintln(w, " No checkouts recorded.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " Checked Out\tReference\tRoom No\tGuest Name\tDays\tRoom Cost\tFood Bill\tTotal")
	for _, r := range receipts {
		fmt.Fprintf(tw, " %s\t%s\t%d\t%s\t%d\t%d\t%d\t%d\n",
			r.CheckedOutAt.Local().Format("2006-01-02 15:04"), r.Reference, r.RoomNo, r.GuestName,
			r.Days, r.RoomCost, r.FoodBill, r.Total)
	}
	tw.Flush()

	fmt.Fprintf(w, "\n Charges\n\n")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " Reference\tItem\tQty\tRate\tAmount")
	for _, r := range receipts {
		lines, err := r.ChargeLines()
		if err != nil {
			LogError("%v", err)
			fmt.Fprintf(tw, " %s\t(unreadable)\t\t\t\n", r.Reference)
			continue
		}
		for _, l := range lines {
			fmt.Fprintf(tw, " %s\t%s\t%d\t%d\t%d\n", r.Reference, l.Item, l.Quantity, l.Rate, l.Amount)
		}
	}
	tw.Flush()
}
