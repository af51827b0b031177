package repository

import (
	"time"

	"gorm.io/gorm"
)

type vehicleRow struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	StockNumber  string `gorm:"size:32;uniqueIndex;not null"`
	VIN          string `gorm:"size:17;index"`
	Year         int
	Make         string `gorm:"size:64;index"`
	Model        string `gorm:"size:64;index"`
	Trim         string `gorm:"size:64"`
	BodyStyle    string `gorm:"size:64"`
	Drivetrain   string `gorm:"size:32"`
	Engine       string `gorm:"size:64"`
	Fuel         string `gorm:"size:32"`
	Transmission string `gorm:"size:32"`
	Color        string `gorm:"size:32"`
	Odometer     int
	Price        float64
	Status       string `gorm:"size:32"`
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (vehicleRow) TableName() string { return "vehicles" }

type costRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	StockNumber string `gorm:"size:32;index;not null"`
	Description string
	Vendor      string `gorm:"size:128"`
	Amount      float64
	IncurredOn  string `gorm:"size:10"`
	CreatedAt   time.Time
}

func (costRow) TableName() string { return "vehicle_costs" }

type purchaseRow struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	StockNumber   string `gorm:"size:32;uniqueIndex;not null"`
	PurchasedFrom string `gorm:"size:128"`
	PurchaseDate  string `gorm:"size:10"`
	PurchasePrice float64
	PaymentMethod string `gorm:"size:32"`
	Notes         string
	UpdatedAt     time.Time
}

func (purchaseRow) TableName() string { return "vehicle_purchases" }

type warrantyRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	StockNumber string `gorm:"size:32;uniqueIndex;not null"`
	Provider    string `gorm:"size:128"`
	Plan        string `gorm:"size:128"`
	TermMonths  int
	Kilometres  int
	Price       float64
	Deductible  float64
	UpdatedAt   time.Time
}

func (warrantyRow) TableName() string { return "vehicle_warranties" }

type fileRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	StockNumber string `gorm:"size:32;index;not null"`
	Kind        string `gorm:"size:16"`
	Name        string
	ContentType string `gorm:"size:128"`
	Size        int64
	ObjectKey   string
	URL         string
	CreatedAt   time.Time
}

func (fileRow) TableName() string { return "vehicle_files" }

type customerRow struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	FirstName     string `gorm:"size:64;index"`
	LastName      string `gorm:"size:64;index"`
	Email         string `gorm:"size:128;index"`
	Phone         string `gorm:"size:32;index"`
	Address       string
	City          string `gorm:"size:64"`
	Province      string `gorm:"size:32"`
	PostalCode    string `gorm:"size:16"`
	LicenseNumber string `gorm:"size:32"`
	VerifiedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (customerRow) TableName() string { return "customers" }

// AutoMigrate creates or updates the inventory tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&vehicleRow{},
		&costRow{},
		&purchaseRow{},
		&warrantyRow{},
		&fileRow{},
		&customerRow{},
	)
}
