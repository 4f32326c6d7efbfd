package mapping

import (
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/SscSPs/docorbit_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PhoneNumber:  d.PhoneNumber,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Gender:       ToText(string(d.Gender)),
		DateOfBirth:  ToDate(d.DateOfBirth),
		Address:      ToText(d.Address),
		City:         ToText(d.City),
		State:        ToText(d.State),
		Zip:          ToText(d.Zip),
		Country:      ToText(d.Country),
		Roles:        d.Roles.Strings(),
		Enabled:      d.Enabled,
		Timestamps:   ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	roles := make(domain.Roles, len(m.Roles))
	for i, r := range m.Roles {
		roles[i] = domain.Role(r)
	}
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PhoneNumber:  m.PhoneNumber,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Gender:       domain.Gender(FromText(m.Gender)),
		DateOfBirth:  FromDate(m.DateOfBirth),
		Address:      FromText(m.Address),
		City:         FromText(m.City),
		State:        FromText(m.State),
		Zip:          FromText(m.Zip),
		Country:      FromText(m.Country),
		Roles:        roles,
		Enabled:      m.Enabled,
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
}

// ToModelTimestamps converts domain Timestamps to model Timestamps
func ToModelTimestamps(d domain.Timestamps) models.Timestamps {
	return models.Timestamps{
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainTimestamps converts model Timestamps to domain Timestamps
func ToDomainTimestamps(m models.Timestamps) domain.Timestamps {
	return domain.Timestamps{
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}
