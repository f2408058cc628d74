package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/camilourd/trip_tracker/internal/trip"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "viajes.json")
}

func TestJSONFileStorageRoundTrip(t *testing.T) {
	store := NewJSONFileStorage(tempStorePath(t))

	first := trip.NewTrip(trip.DestinationColombia, trip.NewDate(2024, 6, 7), trip.NewDate(2024, 6, 8), 200000)
	first.AddExpense(trip.Expense{Date: trip.NewDate(2024, 6, 7), Amount: 50000, PaymentMethod: trip.PaymentCash, Category: trip.CategoryFood})
	first.AddExpense(trip.Expense{Date: trip.NewDate(2024, 6, 8), Amount: 12000, PaymentMethod: trip.PaymentCard, Category: trip.CategoryShopping})
	second := trip.NewTrip(trip.DestinationEuropa, trip.NewDate(2024, 7, 1), trip.NewDate(2024, 7, 5), 420000)

	require.NoError(t, store.SaveAllTrips([]trip.Trip{first, second}))

	loaded, err := store.LoadAllTrips()
	require.NoError(t, err)
	require.Equal(t, []trip.Trip{first, second}, loaded)
}

func TestJSONFileStorageMissingFileIsEmpty(t *testing.T) {
	store := NewJSONFileStorage(tempStorePath(t))

	trips, err := store.LoadAllTrips()
	require.NoError(t, err)
	require.Empty(t, trips)
}

func TestJSONFileStorageCorruptFileIsEmpty(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewJSONFileStorage(path)
	trips, err := store.LoadAllTrips()
	require.NoError(t, err)
	require.Empty(t, trips)
}

func TestJSONFileStorageSaveOverwrites(t *testing.T) {
	store := NewJSONFileStorage(tempStorePath(t))

	old := trip.NewTrip(trip.DestinationColombia, trip.NewDate(2024, 6, 7), trip.NewDate(2024, 6, 8), 100)
	require.NoError(t, store.SaveAllTrips([]trip.Trip{old}))

	replacement := trip.NewTrip(trip.DestinationUSA, trip.NewDate(2024, 8, 1), trip.NewDate(2024, 8, 3), 900)
	require.NoError(t, store.SaveAllTrips([]trip.Trip{replacement}))

	loaded, err := store.LoadAllTrips()
	require.NoError(t, err)
	require.Equal(t, []trip.Trip{replacement}, loaded)
}

func TestInMemoryStorageIsIsolatedFromCallers(t *testing.T) {
	store := NewInMemoryStorage()
	saved := []trip.Trip{trip.NewTrip(trip.DestinationColombia, trip.NewDate(2024, 6, 7), trip.NewDate(2024, 6, 8), 100)}
	require.NoError(t, store.SaveAllTrips(saved))

	loaded, err := store.LoadAllTrips()
	require.NoError(t, err)
	require.Equal(t, saved, loaded)

	loaded[0] = trip.NewTrip(trip.DestinationUSA, trip.NewDate(2025, 1, 1), trip.NewDate(2025, 1, 2), 1)
	again, err := store.LoadAllTrips()
	require.NoError(t, err)
	require.Equal(t, saved, again)
}
