package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table. Role holds one of the closed role strings
// (client/employee/admin); parsing into domain.Role happens at the boundary.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'client'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Catalog Tables
// ============================================================

// Inventory categories
const (
	CategoryBike      = "Bicicleta"
	CategorySparePart = "Repuesto"
)

// Bike represents the rental fleet
type Bike struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"size:100;not null" json:"name"`
	Type             string         `gorm:"size:50" json:"type"`
	Brand            string         `gorm:"size:50" json:"brand"`
	ImageURL         string         `gorm:"size:255" json:"image_url"`
	HourlyRate       float64        `gorm:"type:decimal(15,2);not null" json:"hourly_rate"`
	Stock            int            `gorm:"not null;default:0" json:"stock"`
	AvailableForRent bool           `gorm:"default:true" json:"available_for_rent"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Bike) TableName() string {
	return "bikes"
}

// InventoryItem represents items for sale (bikes and spare parts)
type InventoryItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Brand     string         `gorm:"size:50" json:"brand"`
	Category  string         `gorm:"size:30;not null;index" json:"category"`
	ImageURL  string         `gorm:"size:255" json:"image_url"`
	Price     float64        `gorm:"type:decimal(15,2);not null" json:"price"`
	Stock     int            `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// ============================================================
// Order Tables
// ============================================================

// Rental statuses
const (
	RentalStatusConfirmed = "Confirmado"
	RentalStatusCompleted = "Completado"
	RentalStatusCancelled = "Cancelado"
)

// Rental represents a confirmed bike rental
type Rental struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	RentalNo      string         `gorm:"size:40;uniqueIndex;not null" json:"rental_no"`
	BikeID        uint           `gorm:"not null;index" json:"bike_id"`
	CustomerName  string         `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string         `gorm:"size:100;not null" json:"customer_email"`
	StartDate     time.Time      `gorm:"not null" json:"start_date"`
	EndDate       time.Time      `gorm:"not null" json:"end_date"`
	DurationHours int            `gorm:"not null" json:"duration_hours"`
	TotalPrice    float64        `gorm:"type:decimal(15,2);not null" json:"total_price"`
	Status        string         `gorm:"size:20;default:'Confirmado'" json:"status"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Bike *Bike `gorm:"foreignKey:BikeID" json:"bike,omitempty"`
}

func (Rental) TableName() string {
	return "rentals"
}

// Purchase represents a sales order
type Purchase struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	OrderNo         string         `gorm:"size:40;uniqueIndex;not null" json:"order_no"`
	CustomerName    string         `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail   string         `gorm:"size:100;not null" json:"customer_email"`
	CustomerAddress string         `gorm:"size:255;not null" json:"customer_address"`
	DeliveryDate    time.Time      `gorm:"not null" json:"delivery_date"`
	TotalAmount     float64        `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem is one line of a sales order
type PurchaseItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	PurchaseID uint    `gorm:"not null;index" json:"purchase_id"`
	ItemID     uint    `gorm:"not null" json:"item_id"`
	Name       string  `gorm:"size:100;not null" json:"name"`
	UnitPrice  float64 `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	LineTotal  float64 `gorm:"type:decimal(15,2);not null" json:"line_total"`
}

func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// ============================================================
// Repair Tables
// ============================================================

// Repair statuses
const (
	RepairStatusPending    = "Pendiente"
	RepairStatusInProgress = "En Proceso"
	RepairStatusCompleted  = "Completada"
	RepairStatusCancelled  = "Cancelada"
)

// RepairStatuses is the closed set of valid repair ticket statuses.
var RepairStatuses = []string{
	RepairStatusPending,
	RepairStatusInProgress,
	RepairStatusCompleted,
	RepairStatusCancelled,
}

// IsValidRepairStatus reports whether s is in the closed status set.
func IsValidRepairStatus(s string) bool {
	for _, status := range RepairStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// RepairRequest represents a repair ticket
type RepairRequest struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	TicketNo           string         `gorm:"size:40;uniqueIndex;not null" json:"ticket_no"`
	BikeType           string         `gorm:"size:50;not null" json:"bike_type"`
	BikeBrand          string         `gorm:"size:50;not null" json:"bike_brand"`
	ProblemDescription string         `gorm:"type:text;not null" json:"problem_description"`
	ContactName        string         `gorm:"size:100;not null" json:"contact_name"`
	ContactEmail       string         `gorm:"size:100;not null" json:"contact_email"`
	ContactPhone       string         `gorm:"size:30" json:"contact_phone"`
	Status             string         `gorm:"size:20;default:'Pendiente'" json:"status"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RepairRequest) TableName() string {
	return "repair_requests"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Bike{},
		&InventoryItem{},
		&Rental{},
		&Purchase{},
		&PurchaseItem{},
		&RepairRequest{},
	)
}
