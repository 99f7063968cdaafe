package store_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/store"
)

// setupStore opens a fresh in-memory SQLite database per test and runs
// Initialize on it.
func setupStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	s := store.New(db)
	if err := s.Initialize(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return s
}

func seedCompany(t *testing.T, s *store.Store, name string) uint {
	t.Helper()
	id, err := s.CreateCompany(&models.Company{Name: name, PlanID: 1})
	assert.NoError(t, err)
	return id
}

func TestInitializeIdempotent(t *testing.T) {
	s := setupStore(t)

	// Second call must not duplicate the seeded plans.
	assert.NoError(t, s.Initialize())

	plans, err := s.GetPlans()
	assert.NoError(t, err)
	assert.Len(t, plans, 3)

	names := map[string]bool{}
	for _, plan := range plans {
		names[plan.Name] = true
	}
	assert.True(t, names["Free"])
	assert.True(t, names["Business"])
	assert.True(t, names["Premium"])

	free := plans[0]
	assert.Equal(t, "Free", free.Name)
	assert.Equal(t, 0.0, free.Price)
	assert.Equal(t, 9.0, free.TransactionFee)
	assert.Equal(t, 1, free.MaxUsers)
	assert.Equal(t, 1, free.MaxLocations)
}

func TestCreateUserDuplicates(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateUser("alice", "alice@example.com", "pw1", models.RoleCustomer, nil)
	assert.NoError(t, err)

	// Same username, different email.
	_, err = s.CreateUser("alice", "other@example.com", "pw2", models.RoleCustomer, nil)
	assert.ErrorIs(t, err, store.ErrDuplicateKey)

	// Same email, different username.
	_, err = s.CreateUser("alice2", "alice@example.com", "pw3", models.RoleCustomer, nil)
	assert.ErrorIs(t, err, store.ErrDuplicateKey)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateUser("bob", "bob@example.com", "pw", "superuser", nil)
	assert.ErrorIs(t, err, store.ErrInvalidValue)
}

func TestAuthenticateUser(t *testing.T) {
	s := setupStore(t)

	userID, err := s.CreateUser("alice", "alice@example.com", "secret", models.RoleCustomer, nil)
	assert.NoError(t, err)

	user, err := s.AuthenticateUser("alice@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleCustomer, user.Role)

	// Wrong password for a known email is the same negative result.
	_, err = s.AuthenticateUser("alice@example.com", "wrong")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.AuthenticateUser("nobody@example.com", "secret")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetRentalItemsFilter(t *testing.T) {
	s := setupStore(t)

	companyA := seedCompany(t, s, "Tool Depot")
	companyB := seedCompany(t, s, "Camera House")

	locID, err := s.CreateLocation(&models.Location{Name: "Downtown", CompanyID: companyA})
	assert.NoError(t, err)

	_, err = s.CreateRentalItem(&models.RentalItem{
		Name: "Drill", CompanyID: companyA, LocationID: &locID, PricePerDay: 15,
	})
	assert.NoError(t, err)
	_, err = s.CreateRentalItem(&models.RentalItem{
		Name: "Camera", CompanyID: companyB, PricePerDay: 40,
	})
	assert.NoError(t, err)

	all, err := s.GetRentalItems(nil)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := s.GetRentalItems(&companyA)
	assert.NoError(t, err)
	assert.Len(t, scoped, 1)
	assert.Equal(t, "Drill", scoped[0].Name)
	assert.Equal(t, "Tool Depot", scoped[0].CompanyName)
	assert.Equal(t, "Downtown", scoped[0].LocationName)
	assert.Equal(t, models.ItemAvailable, scoped[0].AvailabilityStatus)
}

func TestCreateBookingAlwaysPending(t *testing.T) {
	s := setupStore(t)

	companyID := seedCompany(t, s, "Tool Depot")
	itemID, err := s.CreateRentalItem(&models.RentalItem{
		Name: "Drill", CompanyID: companyID, PricePerDay: 15,
	})
	assert.NoError(t, err)
	userID, err := s.CreateUser("alice", "alice@example.com", "pw", models.RoleCustomer, nil)
	assert.NoError(t, err)

	first, err := s.CreateBooking(itemID, userID, "2025-01-01", "2025-01-03", 45.0)
	assert.NoError(t, err)
	second, err := s.CreateBooking(itemID, userID, "2025-02-01", "2025-02-02", 15.0)
	assert.NoError(t, err)
	assert.Greater(t, second, first)

	bookings, err := s.GetBookings(&userID, nil)
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	for _, booking := range bookings {
		assert.Equal(t, models.BookingPending, booking.Status)
	}
	// Newest first.
	assert.Equal(t, second, bookings[0].ID)
	assert.Equal(t, first, bookings[1].ID)
}

func TestGetBookingsScoping(t *testing.T) {
	s := setupStore(t)

	companyA := seedCompany(t, s, "Tool Depot")
	companyB := seedCompany(t, s, "Camera House")

	drillID, err := s.CreateRentalItem(&models.RentalItem{Name: "Drill", CompanyID: companyA, PricePerDay: 15})
	assert.NoError(t, err)
	cameraID, err := s.CreateRentalItem(&models.RentalItem{Name: "Camera", CompanyID: companyB, PricePerDay: 40})
	assert.NoError(t, err)

	aliceID, err := s.CreateUser("alice", "alice@example.com", "pw", models.RoleCustomer, nil)
	assert.NoError(t, err)
	bobID, err := s.CreateUser("bob", "bob@example.com", "pw", models.RoleCustomer, nil)
	assert.NoError(t, err)

	_, err = s.CreateBooking(drillID, aliceID, "2025-01-01", "2025-01-02", 15)
	assert.NoError(t, err)
	_, err = s.CreateBooking(cameraID, bobID, "2025-01-05", "2025-01-06", 40)
	assert.NoError(t, err)

	byUser, err := s.GetBookings(&aliceID, nil)
	assert.NoError(t, err)
	assert.Len(t, byUser, 1)
	assert.Equal(t, "Drill", byUser[0].ItemName)
	assert.Equal(t, "alice", byUser[0].Username)

	byCompany, err := s.GetBookings(nil, &companyB)
	assert.NoError(t, err)
	assert.Len(t, byCompany, 1)
	assert.Equal(t, "Camera", byCompany[0].ItemName)
	assert.Equal(t, "bob", byCompany[0].Username)

	all, err := s.GetBookings(nil, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStatuses(t *testing.T) {
	s := setupStore(t)

	companyID := seedCompany(t, s, "Tool Depot")
	itemID, err := s.CreateRentalItem(&models.RentalItem{Name: "Drill", CompanyID: companyID, PricePerDay: 15})
	assert.NoError(t, err)
	userID, err := s.CreateUser("alice", "alice@example.com", "pw", models.RoleCustomer, nil)
	assert.NoError(t, err)
	bookingID, err := s.CreateBooking(itemID, userID, "2025-01-01", "2025-01-02", 15)
	assert.NoError(t, err)

	assert.NoError(t, s.UpdateBookingStatus(bookingID, models.BookingConfirmed))
	assert.NoError(t, s.UpdateItemStatus(itemID, models.ItemRented))

	assert.ErrorIs(t, s.UpdateBookingStatus(bookingID, "misplaced"), store.ErrInvalidValue)
	assert.ErrorIs(t, s.UpdateItemStatus(itemID, "lost"), store.ErrInvalidValue)
	assert.ErrorIs(t, s.UpdateBookingStatus(9999, models.BookingCancelled), store.ErrNotFound)

	bookings, err := s.GetBookings(&userID, nil)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, bookings[0].Status)
}

func TestAccessCodeWindow(t *testing.T) {
	s := setupStore(t)

	companyID := seedCompany(t, s, "Tool Depot")
	locID, err := s.CreateLocation(&models.Location{Name: "Downtown", CompanyID: companyID})
	assert.NoError(t, err)
	userID, err := s.CreateUser("alice", "alice@example.com", "pw", models.RoleCustomer, nil)
	assert.NoError(t, err)

	now := time.Now()
	grant := models.AccessControl{
		LocationID: locID,
		UserID:     userID,
		AccessCode: "4921",
		ValidFrom:  now,
		ValidTo:    now.AddDate(0, 0, -1),
	}
	_, err = s.CreateAccessCode(&grant)
	assert.ErrorIs(t, err, store.ErrInvalidValue)

	grant.ValidTo = now.AddDate(0, 0, 7)
	_, err = s.CreateAccessCode(&grant)
	assert.NoError(t, err)

	codes, err := s.GetAccessCodes(&locID)
	assert.NoError(t, err)
	assert.Len(t, codes, 1)
	assert.Equal(t, "4921", codes[0].AccessCode)
}

func TestEndToEndExample(t *testing.T) {
	s := setupStore(t)

	companyID := seedCompany(t, s, "Tool Depot")
	itemID, err := s.CreateRentalItem(&models.RentalItem{Name: "Drill", CompanyID: companyID, PricePerDay: 15})
	assert.NoError(t, err)

	aliceID, err := s.CreateUser("alice", "alice@x.com", "pw1", models.RoleBusinessOwner, &companyID)
	assert.NoError(t, err)

	bookingID, err := s.CreateBooking(itemID, aliceID, "2025-01-01", "2025-01-03", 45.0)
	assert.NoError(t, err)

	bookings, err := s.GetBookings(&aliceID, nil)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, bookingID, bookings[0].ID)
	assert.Equal(t, itemID, bookings[0].ItemID)
	assert.Equal(t, 45.0, bookings[0].TotalPrice)
	assert.Equal(t, models.BookingPending, bookings[0].Status)
}
