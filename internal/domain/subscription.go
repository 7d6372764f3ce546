package domain

import (
	"slices"
	"time"
)

type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanStarter    SubscriptionPlan = "starter"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionUnpaid   SubscriptionStatus = "unpaid"
)

type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// ValidPlans contains all subscription plans in ascending tier order
var ValidPlans = []SubscriptionPlan{PlanFree, PlanStarter, PlanPro, PlanEnterprise}

// IsValidPlan checks if a given plan is valid
func IsValidPlan(plan string) bool {
	return slices.Contains(ValidPlans, SubscriptionPlan(plan))
}

type Subscription struct {
	ID                   string             `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID             string             `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Plan                 SubscriptionPlan   `gorm:"type:text;not null" json:"plan"`
	Status               SubscriptionStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	BillingCycle         BillingCycle       `gorm:"type:text;not null;default:'monthly'" json:"billing_cycle"`
	Amount               int64              `gorm:"not null;default:0" json:"amount"`
	Currency             string             `gorm:"type:text;not null;default:'USD'" json:"currency"`
	StripeCustomerID     string             `gorm:"type:text" json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string             `gorm:"type:text" json:"stripe_subscription_id,omitempty"`
	TrialStart           *time.Time         `gorm:"type:timestamp with time zone" json:"trial_start,omitempty"`
	TrialEnd             *time.Time         `gorm:"type:timestamp with time zone" json:"trial_end,omitempty"`
	CurrentPeriodStart   *time.Time         `gorm:"type:timestamp with time zone" json:"current_period_start,omitempty"`
	CurrentPeriodEnd     *time.Time         `gorm:"type:timestamp with time zone" json:"current_period_end,omitempty"`
	CancelAtPeriodEnd    bool               `gorm:"not null;default:false" json:"cancel_at_period_end"`
	CreatedAt            time.Time          `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time          `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant               *Tenant            `gorm:"foreignKey:TenantID" json:"-"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
