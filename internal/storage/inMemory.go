package storage

import (
	"github.com/camilourd/trip_tracker/internal/trip"
)

// InMemoryStorage holds the trip collection in process memory. Used by
// tests and as a throwaway backend; same load-all/save-all contract as the
// file store.
type InMemoryStorage struct {
	trips []trip.Trip
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{trips: []trip.Trip{}}
}

func (inMem *InMemoryStorage) GetStorageType() string {
	return "inmemory"
}

func (inMem *InMemoryStorage) LoadAllTrips() ([]trip.Trip, error) {
	loaded := make([]trip.Trip, len(inMem.trips))
	copy(loaded, inMem.trips)
	return loaded, nil
}

func (inMem *InMemoryStorage) SaveAllTrips(trips []trip.Trip) error {
	saved := make([]trip.Trip, len(trips))
	copy(saved, trips)
	inMem.trips = saved
	return nil
}
