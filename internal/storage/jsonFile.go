package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/camilourd/trip_tracker/internal/trip"
	"github.com/camilourd/trip_tracker/logging"
)

// JSONFileStorage keeps the whole trip collection in one JSON file. A
// missing or unparsable file deliberately reads back as an empty collection:
// the tracker starts over instead of refusing to run. Saves overwrite the
// whole file, so the last writer wins; there is no locking and the backend
// is only safe for a single process.
type JSONFileStorage struct {
	path string
}

func NewJSONFileStorage(path string) *JSONFileStorage {
	return &JSONFileStorage{path: path}
}

func (s *JSONFileStorage) GetStorageType() string {
	return "json"
}

func (s *JSONFileStorage) LoadAllTrips() ([]trip.Trip, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []trip.Trip{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read trip store %s: %w", s.path, err)
	}

	var trips []trip.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		logging.Logger.Warnf("trip store %s is not valid JSON, starting from an empty collection: %v", s.path, err)
		return []trip.Trip{}, nil
	}
	if trips == nil {
		trips = []trip.Trip{}
	}
	return trips, nil
}

func (s *JSONFileStorage) SaveAllTrips(trips []trip.Trip) error {
	data, err := json.MarshalIndent(trips, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode trips: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create trip store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write trip store %s: %w", s.path, err)
	}
	return nil
}
