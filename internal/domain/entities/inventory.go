package entities

import "time"

// Vehicle is an inventory unit mirrored 1:1 from the vehicles table.
// Optional fields default to their zero value.
type Vehicle struct {
	ID           int64     `json:"id"`
	StockNumber  string    `json:"stock_number"`
	VIN          string    `json:"vin"`
	Year         int       `json:"year"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Trim         string    `json:"trim"`
	BodyStyle    string    `json:"body_style"`
	Drivetrain   string    `json:"drivetrain"`
	Engine       string    `json:"engine"`
	Fuel         string    `json:"fuel"`
	Transmission string    `json:"transmission"`
	Color        string    `json:"color"`
	Odometer     int       `json:"odometer"`
	Price        float64   `json:"price"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VehicleSpec is what a VIN decode yields.
type VehicleSpec struct {
	VIN          string `json:"vin"`
	Year         int    `json:"year,omitempty"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Trim         string `json:"trim,omitempty"`
	BodyStyle    string `json:"body_style,omitempty"`
	Drivetrain   string `json:"drivetrain,omitempty"`
	Engine       string `json:"engine,omitempty"`
	Fuel         string `json:"fuel,omitempty"`
	Transmission string `json:"transmission,omitempty"`
}

type CostLine struct {
	ID          int64     `json:"id"`
	StockNumber string    `json:"stock_number"`
	Description string    `json:"description"`
	Vendor      string    `json:"vendor"`
	Amount      float64   `json:"amount"`
	IncurredOn  string    `json:"incurred_on"`
	CreatedAt   time.Time `json:"created_at"`
}

type PurchaseRecord struct {
	ID            int64     `json:"id"`
	StockNumber   string    `json:"stock_number"`
	PurchasedFrom string    `json:"purchased_from"`
	PurchaseDate  string    `json:"purchase_date"`
	PurchasePrice float64   `json:"purchase_price"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WarrantyRecord struct {
	ID          int64     `json:"id"`
	StockNumber string    `json:"stock_number"`
	Provider    string    `json:"provider"`
	Plan        string    `json:"plan"`
	TermMonths  int       `json:"term_months"`
	Kilometres  int       `json:"kilometres"`
	Price       float64   `json:"price"`
	Deductible  float64   `json:"deductible"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type FileKind string

const (
	FileKindUpload    FileKind = "upload"
	FileKindGenerated FileKind = "generated"
)

// FileRecord is metadata for an object stored in the media bucket, or for an
// externally hosted generated image (ObjectKey empty).
type FileRecord struct {
	ID          int64     `json:"id"`
	StockNumber string    `json:"stock_number"`
	Kind        FileKind  `json:"kind"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	ObjectKey   string    `json:"object_key,omitempty"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

type Customer struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	Province      string     `json:"province"`
	PostalCode    string     `json:"postal_code"`
	LicenseNumber string     `json:"license_number"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IdentityDocument is the result of an OCR scan of an ID card or licence.
type IdentityDocument struct {
	Kind          string `json:"kind"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	Expiry        string `json:"expiry,omitempty"`
	Address       string `json:"address,omitempty"`
}
