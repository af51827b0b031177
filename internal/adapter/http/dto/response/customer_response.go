package response

import (
	"time"

	"dealer_backoffice/internal/domain/entities"
)

type CustomerResponse struct {
	entities.Customer
	Verified bool `json:"verified"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{Customer: c, Verified: c.VerifiedAt != nil}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}

type VerificationResponse struct {
	Customer   CustomerResponse          `json:"customer"`
	Document   entities.IdentityDocument `json:"document"`
	VerifiedAt *time.Time                `json:"verified_at,omitempty"`
}

func FromVerification(c entities.Customer, doc entities.IdentityDocument) VerificationResponse {
	return VerificationResponse{Customer: FromCustomer(c), Document: doc, VerifiedAt: c.VerifiedAt}
}
