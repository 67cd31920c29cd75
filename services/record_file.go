package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"hotel-manager/utils"
)

// RecordFile ties a RecordStore to the file it is loaded from and flushed to.
type RecordFile struct {
	Path  string
	Store *RecordStore

	closeOnce sync.Once
	closeErr  error
}

// OpenStore loads path into a new store. A missing or empty file gives an
// empty store. An unreadable or corrupt file also gives an empty store, and
// the returned warning says why; the RecordFile is usable either way.
func OpenStore(path string) (*RecordFile, error) {
	rf := &RecordFile{Path: path, Store: NewRecordStore()}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		utils.LogInfo("no record file at %s, starting with empty data", path)
		return rf, nil
	}
	if err != nil {
		utils.LogError("open record file %s: %v", path, err)
		return rf, fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() == 0 {
		utils.LogInfo("record file %s is empty", path)
		return rf, nil
	}

	records, err := DecodeRecords(f)
	if err != nil {
		utils.LogError("load %s: %v; starting with empty data", path, err)
		return rf, fmt.Errorf("load record file %s: %w", path, err)
	}

	rf.Store.Replace(records)
	utils.LogInfo("loaded %d records from %s", len(records), path)
	return rf, nil
}

// Save writes the whole store over the file. The new content is written to a
// temporary file in the same directory and renamed into place.
func (rf *RecordFile) Save() error {
	dir := filepath.Dir(rf.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(rf.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("save records: %w", err)
	}

	records := rf.Store.List()
	if err := EncodeRecords(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("save records: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("save records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	if err := os.Rename(tmpName, rf.Path); err != nil {
		return fmt.Errorf("save records: %w", err)
	}

	utils.LogInfo("saved %d records to %s", len(records), rf.Path)
	return nil
}

// Close flushes the store once. Later calls return the first result.
func (rf *RecordFile) Close() error {
	rf.closeOnce.Do(func() {
		rf.closeErr = rf.Save()
		if rf.closeErr != nil {
			utils.LogError("flush on close: %v", rf.closeErr)
		}
	})
	return rf.closeErr
}
