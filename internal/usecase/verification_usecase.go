package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/domain/envelope"
	"dealer_backoffice/internal/infrastructure/logger"
	"dealer_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidCustomer      = errors.New("invalid customer")
	ErrInvalidDocument      = errors.New("invalid identity document")
	ErrDocumentUnreadable   = errors.New("identity document could not be read")
	ErrVerificationMismatch = errors.New("identity document does not match customer")
)

// Document kinds accepted by the OCR webhook.
const (
	DocumentKindLicence = "licence"
	DocumentKindID      = "id"
)

// VerificationResult is the outcome of a successful identity check.
type VerificationResult struct {
	Customer entities.Customer         `json:"customer"`
	Document entities.IdentityDocument `json:"document"`
}

type IVerificationUseCase interface {
	CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetCustomer(ctx context.Context, id int64) (entities.Customer, error)
	SearchCustomers(ctx context.Context, query string, limit int) ([]entities.Customer, error)
	ScanDocument(ctx context.Context, kind string, imageBase64 string) (entities.IdentityDocument, error)
	VerifyCustomer(ctx context.Context, customerID int64, kind string, imageBase64 string) (VerificationResult, error)
}

type VerificationUseCase struct {
	customers interfaces.ICustomerRepository
	webhooks  interfaces.IWebhookClient
	now       func() time.Time
	log       *zap.Logger
}

var _ IVerificationUseCase = (*VerificationUseCase)(nil)

func NewVerificationUseCase(customers interfaces.ICustomerRepository, webhooks interfaces.IWebhookClient) *VerificationUseCase {
	return &VerificationUseCase{
		customers: customers,
		webhooks:  webhooks,
		now:       func() time.Time { return time.Now().UTC() },
		log:       zap.L().Named("verification.usecase"),
	}
}

func (u *VerificationUseCase) CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.FirstName == "" && c.LastName == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return entities.Customer{}, ErrInvalidCustomer
		}
	}
	c.ID = 0
	c.VerifiedAt = nil

	created, err := u.customers.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	logger.WithContext(ctx, u.log).Info("customer created", zap.Int64("customer_id", created.ID))
	return created, nil
}

func (u *VerificationUseCase) GetCustomer(ctx context.Context, id int64) (entities.Customer, error) {
	if id <= 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *VerificationUseCase) SearchCustomers(ctx context.Context, query string, limit int) ([]entities.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entities.Customer{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return u.customers.Search(ctx, query, limit)
}

type ocrWebhookPayload struct {
	Kind  string `json:"kind"`
	Image string `json:"image"`
}

// ScanDocument sends a document image to the OCR webhook and maps the fields
// it recognised.
func (u *VerificationUseCase) ScanDocument(ctx context.Context, kind string, imageBase64 string) (entities.IdentityDocument, error) {
	kind, image, err := normalizeDocumentInput(kind, imageBase64)
	if err != nil {
		return entities.IdentityDocument{}, err
	}

	res, err := u.webhooks.Fetch(ctx, interfaces.WebhookOCR, ocrWebhookPayload{Kind: kind, Image: image})
	switch {
	case errors.Is(err, envelope.ErrEmptyEnvelope), errors.Is(err, envelope.ErrUnrecognizedEnvelope):
		return entities.IdentityDocument{}, ErrDocumentUnreadable
	case err != nil:
		return entities.IdentityDocument{}, err
	}

	m := res.Payload
	doc := entities.IdentityDocument{
		Kind:          kind,
		FirstName:     envelope.String(m, "first_name", "firstName", "given_name"),
		LastName:      envelope.String(m, "last_name", "lastName", "surname", "family_name"),
		LicenseNumber: envelope.String(m, "licence_number", "license_number", "licenceNumber", "licenseNumber", "document_number"),
		DateOfBirth:   envelope.String(m, "date_of_birth", "dob", "birth_date"),
		Expiry:        envelope.String(m, "expiry", "expiry_date", "expires", "expiration_date"),
		Address:       envelope.String(m, "address"),
	}
	if doc.FirstName == "" && doc.LastName == "" {
		doc.FirstName, doc.LastName = splitFullName(envelope.String(m, "full_name", "name"))
	}
	if doc.FirstName == "" && doc.LastName == "" && doc.LicenseNumber == "" {
		return entities.IdentityDocument{}, ErrDocumentUnreadable
	}
	return doc, nil
}

// VerifyCustomer scans the document and marks the customer verified when the
// name and, if both sides have one, the licence number match. A customer
// without a licence on file takes the scanned one.
func (u *VerificationUseCase) VerifyCustomer(ctx context.Context, customerID int64, kind string, imageBase64 string) (VerificationResult, error) {
	c, err := u.GetCustomer(ctx, customerID)
	if err != nil {
		return VerificationResult{}, err
	}
	doc, err := u.ScanDocument(ctx, kind, imageBase64)
	if err != nil {
		return VerificationResult{}, err
	}

	log := logger.WithContext(ctx, u.log).With(zap.Int64("customer_id", c.ID), zap.String("kind", doc.Kind))

	nameMatches := normalizeName(c.FirstName+c.LastName) == normalizeName(doc.FirstName+doc.LastName)
	licenceMatches := c.LicenseNumber == "" || doc.LicenseNumber == "" ||
		normalizeLicence(c.LicenseNumber) == normalizeLicence(doc.LicenseNumber)
	if !nameMatches || !licenceMatches {
		log.Info("verification mismatch", zap.Bool("name_matches", nameMatches), zap.Bool("licence_matches", licenceMatches))
		return VerificationResult{}, ErrVerificationMismatch
	}

	now := u.now()
	c.VerifiedAt = &now
	if c.LicenseNumber == "" {
		c.LicenseNumber = doc.LicenseNumber
	}
	c.UpdatedAt = now
	updated, err := u.customers.Update(ctx, c)
	if err != nil {
		return VerificationResult{}, err
	}
	log.Info("customer verified")
	return VerificationResult{Customer: updated, Document: doc}, nil
}

func normalizeDocumentInput(kind, imageBase64 string) (string, string, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	switch kind {
	case "", "license", DocumentKindLicence:
		kind = DocumentKindLicence
	case DocumentKindID:
	default:
		return "", "", ErrInvalidDocument
	}

	image := strings.TrimSpace(imageBase64)
	if strings.HasPrefix(image, "data:") {
		if i := strings.Index(image, ","); i >= 0 {
			image = image[i+1:]
		}
	}
	if image == "" {
		return "", "", ErrInvalidDocument
	}
	if _, err := base64.StdEncoding.DecodeString(image); err != nil {
		return "", "", ErrInvalidDocument
	}
	return kind, image, nil
}

func splitFullName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeLicence(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
