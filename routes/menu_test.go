package routes

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-manager/controllers"
	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

func runMenu(t *testing.T, fc *controllers.FrontDeskController, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	SetupMenu(fc).Run(utils.NewConsole(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out))
	return out.String()
}

func TestMenu_FullSession(t *testing.T) {
	store := services.NewRecordStore()
	fc := controllers.NewFrontDeskController(store, nil)

	out := runMenu(t, fc,
		"1", "1", "Ann", "Street", "555", "3",
		"5", "1", "1", "2",
		"5", "1", "3", "1",
		"3",
		"4", "2", "1", "y",
		"6",
	)

	assert.Contains(t, out, "Room 1 has been booked for Ann.")
	assert.Contains(t, out, "Your total bill is: Rs. 32200")
	assert.Contains(t, out, "Goodbye!")
	assert.Equal(t, models.RoomVacant, store.Status(1))
}

func TestMenu_ErrorsDoNotStopLoop(t *testing.T) {
	store := services.NewRecordStore()
	fc := controllers.NewFrontDeskController(store, nil)

	out := runMenu(t, fc,
		"1", "150",
		"9",
		"2", "4",
		"1", "4", "Bo", "", "", "2",
		"6",
	)

	assert.Contains(t, out, "room 150 does not exist")
	assert.Contains(t, out, "Wrong choice. Please try again.")
	assert.Contains(t, out, "room 4 is vacant")
	assert.Equal(t, models.RoomBooked, store.Status(4))
}

func TestMenu_EndOfInputExits(t *testing.T) {
	store := services.NewRecordStore()
	fc := controllers.NewFrontDeskController(store, nil)

	var out bytes.Buffer
	SetupMenu(fc).Run(utils.NewConsole(strings.NewReader("1\n12\nHalf"), &out))
	assert.Equal(t, models.RoomVacant, store.Status(12))

	out.Reset()
	SetupMenu(fc).Run(utils.NewConsole(strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "MAIN MENU")
}

func TestSetupMenu_Entries(t *testing.T) {
	menu := SetupMenu(controllers.NewFrontDeskController(services.NewRecordStore(), nil))

	keys := make([]string, 0, len(menu.Entries))
	for _, e := range menu.Entries {
		keys = append(keys, e.Key)
		if e.Key != ExitKey {
			require.NotNil(t, e.Action, e.Title)
		}
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, keys)

	_, ok := menu.lookup(ExitKey)
	assert.False(t, ok)
}
