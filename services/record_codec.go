package services

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	apperrors "hotel-manager/errors"
	"hotel-manager/models"
)

// Record file layout, big-endian:
//
//	header: magic "HMSR" | version uint16 | count uint32
//	record: room_no uint16 | room_type uint8 | days int64 | room_cost int64 |
//	        food_bill int64 | name | address | phone
//	text:   length uint32 | bytes
const (
	RecordFileVersion uint16 = 1

	// MaxTextLen bounds a single text field.
	MaxTextLen = 1 << 20

	headerLen      = 4 + 2 + 4
	fixedRecordLen = 2 + 1 + 8 + 8 + 8
)

var recordFileMagic = [4]byte{'H', 'M', 'S', 'R'}

// EncodeRecords writes records, ordered by room number, in the record file format.
func EncodeRecords(w io.Writer, records []models.Record) error {
	sorted := make([]models.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RoomNo < sorted[j].RoomNo })

	bw := bufio.NewWriter(w)

	var header [headerLen]byte
	copy(header[0:4], recordFileMagic[:])
	binary.BigEndian.PutUint16(header[4:6], RecordFileVersion)
	binary.BigEndian.PutUint32(header[6:10], uint32(len(sorted)))
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	for _, rec := range sorted {
		if err := encodeRecord(bw, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func encodeRecord(w io.Writer, rec models.Record) error {
	if !ValidRoomNo(rec.RoomNo) {
		return fmt.Errorf("encode room %d: out of range", rec.RoomNo)
	}

	var fixed [fixedRecordLen]byte
	binary.BigEndian.PutUint16(fixed[0:2], uint16(rec.RoomNo))
	fixed[2] = byte(rec.RoomType)
	binary.BigEndian.PutUint64(fixed[3:11], uint64(int64(rec.Days)))
	binary.BigEndian.PutUint64(fixed[11:19], uint64(rec.RoomCost))
	binary.BigEndian.PutUint64(fixed[19:27], uint64(rec.FoodBill))
	if _, err := w.Write(fixed[:]); err != nil {
		return err
	}

	for _, text := range []string{rec.Name, rec.Address, rec.Phone} {
		if err := encodeText(w, text); err != nil {
			return fmt.Errorf("encode room %d: %w", rec.RoomNo, err)
		}
	}
	return nil
}

func encodeText(w io.Writer, text string) error {
	if len(text) > MaxTextLen {
		return fmt.Errorf("text field of %d bytes exceeds %d", len(text), MaxTextLen)
	}
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(text)))
	if _, err := w.Write(length[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, text)
	return err
}

// DecodeRecords reads a record file. Any malformed input yields ErrCorruptData.
func DecodeRecords(r io.Reader) ([]models.Record, error) {
	br := bufio.NewReader(r)

	var header [headerLen]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, corrupt("header: %v", err)
	}
	if !bytes.Equal(header[0:4], recordFileMagic[:]) {
		return nil, corrupt("bad magic %q", header[0:4])
	}
	if v := binary.BigEndian.Uint16(header[4:6]); v != RecordFileVersion {
		return nil, corrupt("unsupported version %d", v)
	}
	count := binary.BigEndian.Uint32(header[6:10])
	if count > models.MaxRoomNo {
		return nil, corrupt("record count %d exceeds %d rooms", count, models.MaxRoomNo)
	}

	records := make([]models.Record, 0, count)
	seen := make(map[int]bool, count)
	for i := uint32(0); i < count; i++ {
		rec, err := decodeRecord(br)
		if err != nil {
			return nil, corrupt("record %d: %v", i, err)
		}
		if seen[rec.RoomNo] {
			return nil, corrupt("record %d: room %d appears twice", i, rec.RoomNo)
		}
		seen[rec.RoomNo] = true
		records = append(records, rec)
	}

	if _, err := br.ReadByte(); err != io.EOF {
		return nil, corrupt("trailing data after %d records", count)
	}
	return records, nil
}

func decodeRecord(r io.Reader) (models.Record, error) {
	var fixed [fixedRecordLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return models.Record{}, err
	}

	rec := models.Record{
		RoomNo:   int(binary.BigEndian.Uint16(fixed[0:2])),
		RoomType: models.RoomType(fixed[2]),
		Days:     int(int64(binary.BigEndian.Uint64(fixed[3:11]))),
		RoomCost: int64(binary.BigEndian.Uint64(fixed[11:19])),
		FoodBill: int64(binary.BigEndian.Uint64(fixed[19:27])),
	}

	if !ValidRoomNo(rec.RoomNo) {
		return rec, fmt.Errorf("room %d out of range", rec.RoomNo)
	}
	wantType, _ := RoomTypeAndRate(rec.RoomNo)
	if rec.RoomType != wantType {
		return rec, fmt.Errorf("room %d stored as %s, band says %s", rec.RoomNo, rec.RoomType, wantType)
	}
	if cost, err := BaseCost(rec.RoomNo, rec.Days); err != nil || rec.RoomCost != cost {
		return rec, fmt.Errorf("room %d cost %d does not match %d days", rec.RoomNo, rec.RoomCost, rec.Days)
	}
	if rec.FoodBill < 0 {
		return rec, fmt.Errorf("room %d negative food bill %d", rec.RoomNo, rec.FoodBill)
	}
	if _, ok := addAmount(rec.RoomCost, rec.FoodBill); !ok {
		return rec, fmt.Errorf("room %d bill total overflows", rec.RoomNo)
	}

	var err error
	if rec.Name, err = decodeText(r); err != nil {
		return rec, fmt.Errorf("room %d name: %w", rec.RoomNo, err)
	}
	if rec.Address, err = decodeText(r); err != nil {
		return rec, fmt.Errorf("room %d address: %w", rec.RoomNo, err)
	}
	if rec.Phone, err = decodeText(r); err != nil {
		return rec, fmt.Errorf("room %d phone: %w", rec.RoomNo, err)
	}
	return rec, nil
}

func decodeText(r io.Reader) (string, error) {
	var length [4]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint32(length[:])
	if n > MaxTextLen {
		return "", fmt.Errorf("length prefix %d exceeds %d", n, MaxTextLen)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("length prefix %d: %w", n, err)
	}
	return string(buf), nil
}

func corrupt(format string, args ...interface{}) error {
	return apperrors.Wrap(apperrors.ErrCorruptData, format, args...)
}
