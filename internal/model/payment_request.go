package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentRequest status enum constants
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// PaymentAction type enum constants. History rows are ordered oldest to newest.
const (
	ActionTypeStatus   = "status"
	ActionTypeApprove  = "approve"
	ActionTypeApproved = "approved"
	ActionTypeReject   = "reject"
	ActionTypeRejected = "rejected"
	ActionTypeReturn   = "return"
	ActionTypeReturned = "returned"
)

// PaymentRequest represents a payment request moving through the
// organizational approval chain of its budget scope.
type PaymentRequest struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Serial string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"serial"`
	Scope  string    `gorm:"type:varchar(20);not null;index" json:"scope"` // office, site, finance, cash, capex, projects
	Status string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"` // rials
	Description string          `gorm:"type:text" json:"description"`
	RequestDate string          `gorm:"type:varchar(10)" json:"request_date"` // Jalali YYYY-MM-DD

	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`
	Project   *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	// Role fields as received from the organization. Free text, may be
	// Persian; resolved to canonical workflow steps by internal/workflow.
	CurrentRole  string `gorm:"type:varchar(100)" json:"current_role"`
	AssignedRole string `gorm:"type:varchar(100)" json:"assigned_role"`
	WorkflowUnit string `gorm:"type:varchar(100)" json:"workflow_unit"`

	RequestedBy *uuid.UUID `gorm:"type:uuid;index" json:"requested_by"`
	Requester   *User      `gorm:"foreignKey:RequestedBy" json:"requester,omitempty"`

	Actions []PaymentAction `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"actions"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PaymentAction is one row of a request's action history
type PaymentAction struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestID uuid.UUID  `gorm:"type:uuid;not null;index" json:"request_id"`
	Type      string     `gorm:"type:varchar(20);not null" json:"type"`
	FromRole  string     `gorm:"type:varchar(100)" json:"from_role"`
	ToRole    string     `gorm:"type:varchar(100)" json:"to_role"`
	Note      string     `gorm:"type:text" json:"note"`
	ActorID   *uuid.UUID `gorm:"type:uuid" json:"actor_id"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}
