package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-manager/models"
)

func newReceiptService(t *testing.T) *ReceiptService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "receipts.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Receipt{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewReceiptService(db)
}

func TestReceiptService_Archive(t *testing.T) {
	svc := newReceiptService(t)
	svc.Now = func() time.Time { return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC) }

	rec := models.Record{
		RoomNo: 1, Name: "Ann", Address: "A", Phone: "1",
		Days: 3, RoomType: models.RoomTypeDeluxe, RoomCost: 30000, FoodBill: 2200,
	}
	receipt, err := svc.Archive(rec)
	require.NoError(t, err)
	assert.NotZero(t, receipt.ID)
	assert.Len(t, receipt.Reference, 36)
	assert.Equal(t, int64(32200), receipt.Total)
	assert.Equal(t, "Deluxe", receipt.RoomType)

	stored, err := svc.GetByRoom(1)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, receipt.Reference, stored[0].Reference)
	assert.True(t, stored[0].CheckedOutAt.Equal(svc.Now()))

	lines, err := stored[0].ChargeLines()
	require.NoError(t, err)
	assert.Equal(t, []models.ChargeLine{
		{Item: "Deluxe room", Quantity: 3, Rate: 10000, Amount: 30000},
		{Item: "Restaurant", Quantity: 1, Rate: 2200, Amount: 2200},
	}, lines)
}

func TestReceiptService_NoFoodLineWhenNoFood(t *testing.T) {
	svc := newReceiptService(t)

	receipt, err := svc.Archive(models.Record{
		RoomNo: 90, Days: 2, RoomType: models.RoomTypePresidential, RoomCost: 30000,
	})
	require.NoError(t, err)

	lines, err := receipt.ChargeLines()
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestReceiptService_GetAllNewestFirst(t *testing.T) {
	svc := newReceiptService(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, roomNo := range []int{5, 60, 5} {
		at := base.Add(time.Duration(i) * time.Hour)
		svc.Now = func() time.Time { return at }
		roomType, rate := RoomTypeAndRate(roomNo)
		_, err := svc.Archive(models.Record{
			RoomNo: roomNo, Days: 1, RoomType: roomType, RoomCost: rate,
		})
		require.NoError(t, err)
	}

	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 5, all[0].RoomNo)
	assert.Equal(t, 60, all[1].RoomNo)
	assert.True(t, all[0].CheckedOutAt.After(all[2].CheckedOutAt))

	room5, err := svc.GetByRoom(5)
	require.NoError(t, err)
	require.Len(t, room5, 2)
	assert.True(t, room5[0].CheckedOutAt.After(room5[1].CheckedOutAt))

	none, err := svc.GetByRoom(99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReceiptService_Disabled(t *testing.T) {
	var nilSvc *ReceiptService
	assert.False(t, nilSvc.Enabled())

	svc := NewReceiptService(nil)
	assert.False(t, svc.Enabled())

	_, err := svc.Archive(models.Record{RoomNo: 1})
	assert.ErrorIs(t, err, ErrArchiveDisabled)
	_, err = svc.GetAll()
	assert.ErrorIs(t, err, ErrArchiveDisabled)
	_, err = svc.GetByRoom(1)
	assert.ErrorIs(t, err, ErrArchiveDisabled)
}
