package mapping

import (
	"github.com/cherryfin/loanledger/internal/core/domain"
	"github.com/cherryfin/loanledger/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:    d.UserID,
		Mobile:    d.Mobile,
		Name:      d.Name,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Balance:   d.Balance,
		Interest:  d.Interest,
		Remarks:   d.Remarks,
		Enabled:   d.Enabled,
		Version:   d.Version,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:    m.UserID,
		Mobile:    m.Mobile,
		Name:      m.Name,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Balance:   m.Balance,
		Interest:  m.Interest,
		Remarks:   m.Remarks,
		Enabled:   m.Enabled,
		Version:   m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
