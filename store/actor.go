package store

import "github.com/rentster/rentster-app/models"

// Actor identifies the authenticated caller of an accessor operation.
// Handlers build it from token claims and pass it down explicitly;
// nothing in the store reads ambient session state.
type Actor struct {
	UserID    uint
	Role      string
	CompanyID *uint
}

// BookingScope derives the (userID, companyID) filter pair an actor is
// allowed to see: customers see their own bookings, business owners see
// their company's, admins see everything.
func (a Actor) BookingScope() (userID, companyID *uint) {
	switch a.Role {
	case models.RoleBusinessOwner:
		return nil, a.CompanyID
	case models.RoleAdmin:
		return nil, nil
	default:
		id := a.UserID
		return &id, nil
	}
}

// ItemScope derives the company filter for item listings. Only a
// business owner is scoped; everyone else browses the full catalogue.
func (a Actor) ItemScope() (companyID *uint) {
	if a.Role == models.RoleBusinessOwner {
		return a.CompanyID
	}
	return nil
}
