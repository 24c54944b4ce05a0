package models

import (
	"time"

	"sharebrasil-ops/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	FullName  string         `gorm:"size:100" json:"full_name"`
	Role      string         `gorm:"size:20;default:'REQUESTER'" json:"role"`
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
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
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
// Flight Tables
// ============================================================

// FlightRequest solicitação de voo (main workflow table)
type FlightRequest struct {
	ID                   uint                 `gorm:"primaryKey" json:"id"`
	RequesterID          uint                 `gorm:"not null;index" json:"requester_id"`
	RequesterName        string               `gorm:"size:100" json:"requester_name"`
	AircraftRegistration string               `gorm:"size:10;not null;index" json:"aircraft_registration"`
	FlightDate           string               `gorm:"size:10;not null" json:"flight_date"`
	DepartureTime        string               `gorm:"size:5" json:"departure_time"`
	Origin               string               `gorm:"size:10;not null" json:"origin"`
	Destination          string               `gorm:"size:10;not null" json:"destination"`
	Passengers           int                  `gorm:"not null" json:"passengers"`
	Notes                string               `gorm:"type:text" json:"notes"`
	Status               domain.RequestStatus `gorm:"size:20;not null;default:'requested';index" json:"status"`
	Priority             domain.Priority      `gorm:"size:10;not null;default:'medium'" json:"priority"`
	CreatedAt            time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relations
	Requester *User       `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Plan      *FlightPlan `gorm:"foreignKey:FlightRequestID" json:"plan,omitempty"`
}

func (FlightRequest) TableName() string {
	return "flight_requests"
}

// FlightRequestResponse DTO
type FlightRequestResponse struct {
	ID                   uint                 `json:"id"`
	RequesterID          uint                 `json:"requester_id"`
	RequesterName        string               `json:"requester_name"`
	AircraftRegistration string               `json:"aircraft_registration"`
	FlightDate           string               `json:"flight_date"`
	DepartureTime        string               `json:"departure_time"`
	Origin               string               `json:"origin"`
	Destination          string               `json:"destination"`
	Passengers           int                  `json:"passengers"`
	Notes                string               `json:"notes,omitempty"`
	Status               domain.RequestStatus `json:"status"`
	Priority             domain.Priority      `json:"priority"`
	PlanID               *uint                `json:"plan_id,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

func (r *FlightRequest) ToResponse() *FlightRequestResponse {
	resp := &FlightRequestResponse{
		ID:                   r.ID,
		RequesterID:          r.RequesterID,
		RequesterName:        r.RequesterName,
		AircraftRegistration: r.AircraftRegistration,
		FlightDate:           r.FlightDate,
		DepartureTime:        r.DepartureTime,
		Origin:               r.Origin,
		Destination:          r.Destination,
		Passengers:           r.Passengers,
		Notes:                r.Notes,
		Status:               r.Status,
		Priority:             r.Priority,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
	if r.Plan != nil {
		resp.PlanID = &r.Plan.ID
	}
	return resp
}

// FlightPlan plano de voo derived from an approved request
type FlightPlan struct {
	ID                   uint              `gorm:"primaryKey" json:"id"`
	FlightRequestID      uint              `gorm:"not null;uniqueIndex" json:"flight_request_id"`
	AircraftRegistration string            `gorm:"size:10;not null" json:"aircraft_registration"`
	FlightDate           string            `gorm:"size:10;not null" json:"flight_date"`
	DepartureTime        string            `gorm:"size:5" json:"departure_time"`
	EstimatedArrival     string            `gorm:"size:5" json:"estimated_arrival"`
	Origin               string            `gorm:"size:10;not null" json:"origin"`
	Destination          string            `gorm:"size:10;not null" json:"destination"`
	PilotID              *uint             `json:"pilot_id"`
	CopilotID            *uint             `json:"copilot_id"`
	EstimatedFuelLiters  float64           `gorm:"type:decimal(8,1)" json:"estimated_fuel_liters"`
	CoordinatorNotes     string            `gorm:"type:text" json:"coordinator_notes"`
	Status               domain.PlanStatus `gorm:"size:20;not null;default:'scheduled';index" json:"status"`
	CreatedAt            time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relations
	Request *FlightRequest `gorm:"foreignKey:FlightRequestID" json:"request,omitempty"`
	Pilot   *User          `gorm:"foreignKey:PilotID" json:"pilot,omitempty"`
	Copilot *User          `gorm:"foreignKey:CopilotID" json:"copilot,omitempty"`
}

func (FlightPlan) TableName() string {
	return "flight_plans"
}

// Notification immutable lifecycle event record (only the read flag mutates)
type Notification struct {
	ID              uint                    `gorm:"primaryKey" json:"id"`
	Type            domain.NotificationType `gorm:"size:30;not null" json:"type"`
	Title           string                  `gorm:"size:100;not null" json:"title"`
	Message         string                  `gorm:"type:text" json:"message"`
	FlightRequestID *uint                   `gorm:"index" json:"flight_request_id"`
	FlightPlanID    *uint                   `json:"flight_plan_id"`
	RecipientRole   domain.Role             `gorm:"size:20;not null;index" json:"recipient_role"`
	RecipientID     *uint                   `gorm:"index" json:"recipient_id"`
	Read            bool                    `gorm:"default:false" json:"read"`
	CreatedAt       time.Time               `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// HourlyRate valor-hora per aircraft
type HourlyRate struct {
	ID                   uint              `gorm:"primaryKey" json:"id"`
	AircraftRegistration string            `gorm:"size:10;not null;index" json:"aircraft_registration"`
	AircraftModel        string            `gorm:"size:50" json:"aircraft_model"`
	RateValue            float64           `gorm:"type:decimal(10,2);not null" json:"rate_value"`
	Status               domain.RateStatus `gorm:"size:10;not null;default:'active'" json:"status"`
	Notes                string            `gorm:"type:text" json:"notes"`
	CreatedAt            time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (HourlyRate) TableName() string {
	return "hourly_rates"
}

// ============================================================
// Crew, Expense & Payroll Tables
// ============================================================

// CrewHoursEntry one row of the crew flight-hour ledger
type CrewHoursEntry struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	PilotID              uint           `gorm:"not null;index" json:"pilot_id"`
	PilotName            string         `gorm:"size:100" json:"pilot_name"`
	AircraftRegistration string         `gorm:"size:10;not null" json:"aircraft_registration"`
	FlightDate           string         `gorm:"size:10;not null" json:"flight_date"`
	Hours                float64        `gorm:"type:decimal(5,1);not null" json:"hours"`
	CrewRole             string         `gorm:"size:20;default:'pilot'" json:"crew_role"`
	Notes                string         `gorm:"type:text" json:"notes"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Pilot *User `gorm:"foreignKey:PilotID" json:"pilot,omitempty"`
}

func (CrewHoursEntry) TableName() string {
	return "crew_hours_entries"
}

// ExpenseReport travel-expense reimbursement report
type ExpenseReport struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OwnerID     uint           `gorm:"not null;index" json:"owner_id"`
	Description string         `gorm:"size:200;not null" json:"description"`
	Category    string         `gorm:"size:50;index" json:"category"`
	Amount      float64        `gorm:"type:decimal(10,2);not null" json:"amount"`
	ExpenseDate string         `gorm:"size:10;not null" json:"expense_date"`
	ReceiptNote string         `gorm:"type:text" json:"receipt_note"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (ExpenseReport) TableName() string {
	return "expense_reports"
}

// PayrollDocument metadata for a stored payroll file; content lives in the object store
type PayrollDocument struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OwnerID     uint           `gorm:"not null;index" json:"owner_id"`
	Filename    string         `gorm:"size:200;not null" json:"filename"`
	Folder      string         `gorm:"size:100;index" json:"folder"`
	ContentType string         `gorm:"size:100" json:"content_type"`
	SizeBytes   int64          `json:"size_bytes"`
	ObjectKey   string         `gorm:"size:200;uniqueIndex;not null" json:"-"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PayrollDocument) TableName() string {
	return "payroll_documents"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&FlightRequest{},
		&FlightPlan{},
		&Notification{},
		&HourlyRate{},
		&CrewHoursEntry{},
		&ExpenseReport{},
		&PayrollDocument{},
	)
}
