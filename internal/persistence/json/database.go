package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Database struct {
	data     dataModel
	filepath string
	logger   Logger
	sync.RWMutex
}

type Logger interface {
	Error(s string)
}

func (db *Database) Close() error {
	db.Lock() // ensure a write operation finishes
	defer db.Unlock()
	return nil
}

// NewDatabase opens or creates the JSON file database.
func NewDatabase(dataDir string, logger Logger) (*Database, error) {
	db := Database{
		filepath: filepath.Join(dataDir, "updates.json"),
		logger:   logger,
	}

	data, err := os.ReadFile(db.filepath)
	if errors.Is(err, fs.ErrNotExist) {
		const dirPerm = fs.FileMode(0o700)
		err = os.MkdirAll(dataDir, dirPerm)
		if err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		err = db.write()
		if err != nil {
			return nil, err
		}
		return &db, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading database file: %w", err)
	}

	err = json.Unmarshal(data, &db.data)
	if err != nil {
		return nil, fmt.Errorf("decoding database file: %w", err)
	}
	err = db.Check()
	if err != nil {
		return nil, fmt.Errorf("%s validation error: %w", db.filepath, err)
	}
	return &db, nil
}

var (
	ErrDomainEmpty         = errors.New("domain is empty")
	ErrIPRecordsMisordered = errors.New("IP records are not ordered correctly by time")
	ErrIPEmpty             = errors.New("IP is empty")
	ErrIPTimeEmpty         = errors.New("time of IP is empty")
)

func (db *Database) Check() error {
	for _, record := range db.data.Records {
		if record.Domain == "" {
			return fmt.Errorf("%w: for record %s", ErrDomainEmpty, record)
		}
		var t time.Time
		for i, event := range record.Events {
			if event.Time.Before(t) {
				return fmt.Errorf("%w: for record %s", ErrIPRecordsMisordered, record)
			}
			t = event.Time
			switch {
			case !event.IP.IsValid():
				return fmt.Errorf("%w: IP %d of %d for record %s",
					ErrIPEmpty, i+1, len(record.Events), record)
			case event.Time.IsZero():
				return fmt.Errorf("%w: IP %d of %d for record %s",
					ErrIPTimeEmpty, i+1, len(record.Events), record)
			}
		}
	}
	return nil
}

func (db *Database) write() error {
	data, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding database: %w", err)
	}
	const filePerm = fs.FileMode(0o600)
	err = os.WriteFile(db.filepath, data, filePerm)
	if err != nil {
		return fmt.Errorf("writing database file: %w", err)
	}
	return nil
}
