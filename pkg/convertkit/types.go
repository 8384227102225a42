package convertkit

import (
	"time"
)

// Form represents a ConvertKit opt-in form.
type Form struct {
	ID        int64      `json:"id"                   yaml:"id"`
	Name      string     `json:"name"                 yaml:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	Type      string     `json:"type,omitempty"       yaml:"type,omitempty"`
	Format    string     `json:"format,omitempty"     yaml:"format,omitempty"`
	EmbedJS   string     `json:"embed_js,omitempty"   yaml:"embed_js,omitempty"`
	EmbedURL  string     `json:"embed_url,omitempty"  yaml:"embed_url,omitempty"`
	Archived  bool       `json:"archived"             yaml:"archived"`
	UID       string     `json:"uid,omitempty"        yaml:"uid,omitempty"`
}

// Sequence represents a ConvertKit automated email sequence. The v3 API
// still calls these "courses" in its endpoint paths and JSON keys.
type Sequence struct {
	ID        int64      `json:"id"                   yaml:"id"`
	Name      string     `json:"name"                 yaml:"name"`
	Hold      bool       `json:"hold"                 yaml:"hold"`
	Repeat    bool       `json:"repeat"               yaml:"repeat"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Tag represents a label attachable to a subscriber for segmentation.
type Tag struct {
	ID        int64      `json:"id"                   yaml:"id"`
	Name      string     `json:"name"                 yaml:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Subscriber represents an end-user's email entry in the ConvertKit
// account. The API names the email field "email_address".
type Subscriber struct {
	ID           int64             `json:"id"                   yaml:"id"`
	FirstName    string            `json:"first_name"           yaml:"first_name"`
	EmailAddress string            `json:"email_address"        yaml:"email_address"`
	State        string            `json:"state"                yaml:"state"`
	CreatedAt    *time.Time        `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"     yaml:"fields,omitempty"`
}

// Subscription ties a subscriber to a form, sequence, or tag. Subscribe
// endpoints return one wrapped in a {"subscription": ...} envelope.
type Subscription struct {
	ID               int64      `json:"id"                    yaml:"id"`
	State            string     `json:"state"                 yaml:"state"`
	Source           string     `json:"source,omitempty"      yaml:"source,omitempty"`
	Referrer         string     `json:"referrer,omitempty"    yaml:"referrer,omitempty"`
	SubscribableID   int64      `json:"subscribable_id"       yaml:"subscribable_id"`
	SubscribableType string     `json:"subscribable_type"     yaml:"subscribable_type"`
	CreatedAt        *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	Subscriber       Subscriber `json:"subscriber"            yaml:"subscriber"`
}

// Account represents the /account response.
type Account struct {
	Name                string `json:"name"                  yaml:"name"`
	PlanType            string `json:"plan_type"             yaml:"plan_type"`
	PrimaryEmailAddress string `json:"primary_email_address" yaml:"primary_email_address"`
}

// SubscriberList is the paged envelope returned by GET /subscribers.
type SubscriberList struct {
	TotalSubscribers int          `json:"total_subscribers" yaml:"total_subscribers"`
	Page             int          `json:"page"              yaml:"page"`
	TotalPages       int          `json:"total_pages"       yaml:"total_pages"`
	Subscribers      []Subscriber `json:"subscribers"       yaml:"subscribers"`
}

// SubscriptionList is the paged envelope returned by the per-resource
// GET /{resource}/{id}/subscriptions endpoints.
type SubscriptionList struct {
	TotalSubscriptions int            `json:"total_subscriptions" yaml:"total_subscriptions"`
	Page               int            `json:"page"                yaml:"page"`
	TotalPages         int            `json:"total_pages"         yaml:"total_pages"`
	Subscriptions      []Subscription `json:"subscriptions"       yaml:"subscriptions"`
}

// SubscribeRequest holds the body for the POST {resource}/{id}/subscribe
// endpoints. Email is required; everything else is optional.
type SubscribeRequest struct {
	Email     string            `json:"email"                yaml:"email"`
	FirstName string            `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"     yaml:"fields,omitempty"`
	Tags      []int64           `json:"tags,omitempty"       yaml:"tags,omitempty"`
}

// TagCreateRequest holds the body for POST /tags.
type TagCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// FindFormOptions selects a single form by id, name, or both. At least
// one selector must be set.
type FindFormOptions struct {
	ID   int64
	Name string
}
