package dto

import (
	"github.com/cherryfin/loanledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateFormat is the textual date layout used at the API boundary.
// Dates are time.Time everywhere inside the service.
const DateFormat = "2006-01-02"

// CreateUserRequest defines the data needed to open a loan account.
type CreateUserRequest struct {
	Mobile    string          `json:"mobile" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	StartDate string          `json:"startDate" binding:"required,dateonly"`
	Balance   decimal.Decimal `json:"balance" binding:"required"`
	Remarks   bool            `json:"remarks"`
}

// UserResponse defines the data returned for a loan account.
type UserResponse struct {
	UserID    string          `json:"userId"`
	Mobile    string          `json:"mobile"`
	Name      string          `json:"name"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Balance   decimal.Decimal `json:"balance"`
	Interest  decimal.Decimal `json:"interest"`
	Remarks   bool            `json:"remarks"`
	Enabled   bool            `json:"enabled"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Mobile:    u.Mobile,
		Name:      u.Name,
		StartDate: u.StartDate.Format(DateFormat),
		EndDate:   u.EndDate.Format(DateFormat),
		Balance:   u.Balance,
		Interest:  u.Interest,
		Remarks:   u.Remarks,
		Enabled:   u.Enabled,
	}
}

// ToListUserResponse converts a slice of domain.User to UserResponse DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}
