package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CustomerPendingInstallation = "pending_installation"
	CustomerActive              = "active"
	CustomerInactive            = "inactive"
	CustomerSuspended           = "suspended"
)

const (
	CategoryResidential  = "Residential"
	CategoryCommercial   = "Commercial"
	CategoryIndustrial   = "Industrial"
	CategoryAgricultural = "Agricultural"
)

const (
	BillGenerated = "generated"
	BillIssued    = "issued"
	BillPaid      = "paid"
)

const (
	PaymentCompleted = "completed"
	PaymentPending   = "pending"
	PaymentFailed    = "failed"
)

const (
	WorkOrderAssigned   = "assigned"
	WorkOrderInProgress = "in_progress"
	WorkOrderCompleted  = "completed"
	WorkOrderCancelled  = "cancelled"
)

const (
	WorkMeterReading        = "meter_reading"
	WorkNewConnection       = "new_connection"
	WorkMaintenance         = "maintenance"
	WorkComplaintResolution = "complaint_resolution"
	WorkBillGeneration      = "bill_generation"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	ConnectionApplied             = "applied"
	ConnectionInspectionScheduled = "inspection_scheduled"
	ConnectionApproved            = "approved"
	ConnectionConnected           = "connected"
	ConnectionRejected            = "rejected"
)

const (
	ResetPending  = "pending"
	ResetApproved = "approved"
	ResetRejected = "rejected"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

type Customer struct {
	ID                 int             `db:"id"`
	AccountNumber      string          `db:"account_number"`
	MeterNumber        *string         `db:"meter_number"`
	FullName           string          `db:"full_name"`
	Email              string          `db:"email"`
	City               string          `db:"city"`
	Category           string          `db:"category"`
	Status             string          `db:"status"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	LastBillAmount     decimal.Decimal `db:"last_bill_amount"`
	CreatedAt          time.Time       `db:"created_at"`
}

// TariffCategory falls back to Residential for customers without a category.
func (c Customer) TariffCategory() string {
	if c.Category == "" {
		return CategoryResidential
	}
	return c.Category
}

type MeterReading struct {
	ID              int             `db:"id"`
	CustomerID      int             `db:"customer_id"`
	ReadingDate     time.Time       `db:"reading_date"`
	PreviousReading decimal.Decimal `db:"previous_reading"`
	CurrentReading  decimal.Decimal `db:"current_reading"`
	UnitsConsumed   decimal.Decimal `db:"units_consumed"`
	EmployeeID      *int            `db:"employee_id"`
	CreatedAt       time.Time       `db:"created_at"`
}

// Slab is one consumption band. A nil UpTo marks the final, unbounded band.
type Slab struct {
	UpTo *decimal.Decimal `json:"up_to,omitempty"`
	Rate decimal.Decimal  `json:"rate"`
}

type Tariff struct {
	ID            int             `db:"id"`
	Category      string          `db:"category"`
	Slabs         []Slab          `db:"slabs"`
	FixedCharge   decimal.Decimal `db:"fixed_charge"`
	DutyPercent   decimal.Decimal `db:"electricity_duty_percent"`
	GSTPercent    decimal.Decimal `db:"gst_percent"`
	EffectiveDate time.Time       `db:"effective_date"`
	ValidUntil    *time.Time      `db:"valid_until"`
	Status        string          `db:"status"`
}

type Bill struct {
	ID              int             `db:"id"`
	BillNumber      string          `db:"bill_number"`
	CustomerID      int             `db:"customer_id"`
	BillingMonth    time.Time       `db:"billing_month"`
	IssueDate       time.Time       `db:"issue_date"`
	DueDate         time.Time       `db:"due_date"`
	UnitsConsumed   decimal.Decimal `db:"units_consumed"`
	MeterReadingID  int             `db:"meter_reading_id"`
	TariffID        int             `db:"tariff_id"`
	BaseAmount      decimal.Decimal `db:"base_amount"`
	FixedCharges    decimal.Decimal `db:"fixed_charges"`
	ElectricityDuty decimal.Decimal `db:"electricity_duty"`
	GSTAmount       decimal.Decimal `db:"gst_amount"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	PaymentDate     *time.Time      `db:"payment_date"`
}

type Payment struct {
	ID             int             `db:"id"`
	CustomerID     int             `db:"customer_id"`
	BillID         int             `db:"bill_id"`
	Amount         decimal.Decimal `db:"amount"`
	Method         string          `db:"payment_method"`
	TransactionRef string          `db:"transaction_ref"`
	Status         string          `db:"status"`
	PaymentDate    time.Time       `db:"payment_date"`
}

type WorkOrder struct {
	ID              int        `db:"id"`
	CustomerID      *int       `db:"customer_id"`
	EmployeeID      *int       `db:"employee_id"`
	WorkType        string     `db:"work_type"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	Priority        string     `db:"priority"`
	Status          string     `db:"status"`
	AssignedDate    time.Time  `db:"assigned_date"`
	DueDate         time.Time  `db:"due_date"`
	CompletionDate  *time.Time `db:"completion_date"`
	CompletionNotes *string    `db:"completion_notes"`
}

type ConnectionRequest struct {
	ID                int        `db:"id"`
	ApplicationNumber string     `db:"application_number"`
	ApplicantName     string     `db:"applicant_name"`
	Email             string     `db:"email"`
	Phone             string     `db:"phone"`
	PropertyAddress   string     `db:"property_address"`
	City              string     `db:"city"`
	ConnectionType    string     `db:"connection_type"`
	Status            string     `db:"status"`
	AccountNumber     *string    `db:"account_number"`
	TemporaryPassword *string    `db:"temporary_password"`
	PasswordHash      *string    `db:"password_hash"`
	ApplicationDate   time.Time  `db:"application_date"`
	InspectionDate    *time.Time `db:"inspection_date"`
	ApprovalDate      *time.Time `db:"approval_date"`
	ConnectedDate     *time.Time `db:"connected_date"`
	CustomerID        *int       `db:"customer_id"`
	RejectionReason   *string    `db:"rejection_reason"`
}

type PasswordResetRequest struct {
	ID                int        `db:"id"`
	RequestNumber     string     `db:"request_number"`
	Email             string     `db:"email"`
	UserType          string     `db:"user_type"`
	Status            string     `db:"status"`
	TempPasswordPlain *string    `db:"temp_password_plain"`
	PasswordHash      *string    `db:"password_hash"`
	ExpiresAt         *time.Time `db:"expires_at"`
	RequestedAt       time.Time  `db:"requested_at"`
	ProcessedAt       *time.Time `db:"processed_at"`
	ProcessedBy       *int       `db:"processed_by"`
	RejectionReason   *string    `db:"rejection_reason"`
}
