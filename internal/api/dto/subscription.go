package dto

import (
	"strings"
	"time"
)

// Subscription schemas are validation-only: the billing processor owns
// the actual lifecycle. The update schema is the create schema with
// every field made optional while keeping each field's constraints; the
// cancellation schema is independent.

// CreateSubscriptionRequest validates a new subscription. TrialDays is
// a creation-time convenience distinct from the persisted trial
// start/end timestamps.
type CreateSubscriptionRequest struct {
	Plan                 string     `json:"plan" binding:"required,oneof=free starter pro enterprise" example:"pro"`
	Status               string     `json:"status" binding:"omitempty,oneof=active inactive trialing past_due canceled unpaid" example:"active"`
	BillingCycle         string     `json:"billing_cycle" binding:"omitempty,oneof=monthly yearly" example:"monthly"`
	Amount               *int64     `json:"amount" binding:"omitempty,gte=0" example:"2900"`
	Currency             string     `json:"currency" binding:"omitempty,len=3,alpha" example:"USD"`
	StripeCustomerID     string     `json:"stripe_customer_id" binding:"omitempty,max=255"`
	StripeSubscriptionID string     `json:"stripe_subscription_id" binding:"omitempty,max=255"`
	TrialStart           *time.Time `json:"trial_start" binding:"omitempty"`
	TrialEnd             *time.Time `json:"trial_end" binding:"omitempty"`
	CurrentPeriodStart   *time.Time `json:"current_period_start" binding:"omitempty"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end" binding:"omitempty"`
	TrialDays            *int       `json:"trial_days" binding:"omitempty,gte=1,lte=90" example:"14"`
}

// Normalize coerces fields into canonical form before validation runs.
func (r *CreateSubscriptionRequest) Normalize() {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
}

// UpdateSubscriptionRequest is the create schema with every field
// optional. TrialDays is accepted only at creation and has no update
// counterpart.
type UpdateSubscriptionRequest struct {
	Plan                 *string    `json:"plan" binding:"omitempty,oneof=free starter pro enterprise"`
	Status               *string    `json:"status" binding:"omitempty,oneof=active inactive trialing past_due canceled unpaid"`
	BillingCycle         *string    `json:"billing_cycle" binding:"omitempty,oneof=monthly yearly"`
	Amount               *int64     `json:"amount" binding:"omitempty,gte=0"`
	Currency             *string    `json:"currency" binding:"omitempty,len=3,alpha"`
	StripeCustomerID     *string    `json:"stripe_customer_id" binding:"omitempty,max=255"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id" binding:"omitempty,max=255"`
	TrialStart           *time.Time `json:"trial_start" binding:"omitempty"`
	TrialEnd             *time.Time `json:"trial_end" binding:"omitempty"`
	CurrentPeriodStart   *time.Time `json:"current_period_start" binding:"omitempty"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end" binding:"omitempty"`
	CancelAtPeriodEnd    *bool      `json:"cancel_at_period_end" binding:"omitempty"`
}

// Normalize coerces fields into canonical form before validation runs.
func (r *UpdateSubscriptionRequest) Normalize() {
	if r.Currency != nil {
		normalized := strings.ToUpper(strings.TrimSpace(*r.Currency))
		r.Currency = &normalized
	}
}

// CancelSubscriptionRequest ends a subscription either immediately or
// at the end of the current billing period (the default).
type CancelSubscriptionRequest struct {
	Immediately bool   `json:"immediately"`
	Reason      string `json:"reason" binding:"omitempty,max=500" example:"Switching to yearly billing"`
}
