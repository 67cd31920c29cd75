package routes

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"hotel-manager/controllers"
	"hotel-manager/middleware"
)

const ExitKey = "6"

// MenuEntry binds a menu key to an action.
type MenuEntry struct {
	Key    string
	Title  string
	Action middleware.HandlerFunc
}

// Menu is the main menu of the front desk.
type Menu struct {
	Entries []MenuEntry
}

// SetupMenu wires every front desk action behind logging and panic recovery.
func SetupMenu(fc *controllers.FrontDeskController) *Menu {
	entry := func(key, title string, action middleware.HandlerFunc) MenuEntry {
		return MenuEntry{
			Key:    key,
			Title:  title,
			Action: middleware.Logger(title, middleware.Recovery(title, action)),
		}
	}

	return &Menu{Entries: []MenuEntry{
		entry("1", "Book A Room", fc.BookRoom),
		entry("2", "Customer Information", fc.ShowRecord),
		entry("3", "Rooms Allotted", fc.ListRecords),
		entry("4", "Edit Customer Details", fc.EditRecord),
		entry("5", "Order Food from Restaurant", fc.OrderFood),
		{Key: ExitKey, Title: "Exit"},
		entry("7", "Find Guest", fc.FindGuest),
		entry("8", "Checkout History", fc.CheckoutHistory),
	}}
}

// Run shows the menu until the operator exits or input ends.
func (m *Menu) Run(p controllers.Prompter) {
	out := p.Out()
	for {
		m.print(out)

		choice, err := p.Ask("\n Enter Your Choice: ")
		if err != nil {
			fmt.Fprintln(out)
			return
		}
		choice = strings.TrimSpace(choice)
		if choice == ExitKey {
			fmt.Fprintln(out, "\n Exiting Hotel Management System. Goodbye!")
			return
		}

		entry, ok := m.lookup(choice)
		if !ok {
			fmt.Fprintln(out, "\n Wrong choice. Please try again.")
			continue
		}
		if err := entry.Action(p); errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return
		}
	}
}

func (m *Menu) lookup(key string) (MenuEntry, bool) {
	for _, e := range m.Entries {
		if e.Key == key && e.Action != nil {
			return e, true
		}
	}
	return MenuEntry{}, false
}

func (m *Menu) print(out io.Writer) {
	fmt.Fprintln(out, "\n +---------------------------------+")
	fmt.Fprintln(out, " |            THE HOTEL            |")
	fmt.Fprintln(out, " +---------------------------------+")
	fmt.Fprintln(out, "\n ********* MAIN MENU *********")
	for _, e := range m.Entries {
		fmt.Fprintf(out, " %s. %s\n", e.Key, e.Title)
	}
}
