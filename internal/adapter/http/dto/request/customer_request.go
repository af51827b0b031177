package request

import (
	"strings"

	"dealer_backoffice/internal/domain/entities"
)

type CustomerRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code"`
	LicenseNumber string `json:"license_number"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		Province:      r.Province,
		PostalCode:    r.PostalCode,
		LicenseNumber: r.LicenseNumber,
	}
}

// DocumentImageRequest carries a base64 image, with or without a data: URL
// prefix. Kind is "licence" (default) or "id".
type DocumentImageRequest struct {
	Kind  string `json:"kind"`
	Image string `json:"image" binding:"required"`
}

func (r DocumentImageRequest) ResolveKind() string {
	return strings.TrimSpace(r.Kind)
}
