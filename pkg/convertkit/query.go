package convertkit

import (
	"net/url"
	"strconv"
	"time"
)

// SubscriberListOptions expresses the documented filters for GET
// /subscribers. Zero values are omitted from the query string.
type SubscriberListOptions struct {
	Page         int
	SortOrder    string // "asc" or "desc"
	SortField    string
	EmailAddress string
	From         *time.Time
	To           *time.Time
	UpdatedFrom  *time.Time
	UpdatedTo    *time.Time
}

// NewSubscriberListOptions creates empty subscriber list options.
func NewSubscriberListOptions() *SubscriberListOptions {
	return &SubscriberListOptions{}
}

// WithPage sets the page to fetch.
func (o *SubscriberListOptions) WithPage(page int) *SubscriberListOptions {
	o.Page = page

	return o
}

// WithEmailAddress filters the listing to a single email address.
func (o *SubscriberListOptions) WithEmailAddress(email string) *SubscriberListOptions {
	o.EmailAddress = email

	return o
}

// ToValues converts the options to url.Values.
func (o *SubscriberListOptions) ToValues() url.Values {
	values := url.Values{}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.SortOrder != "" {
		values.Set("sort_order", o.SortOrder)
	}

	if o.SortField != "" {
		values.Set("sort_field", o.SortField)
	}

	if o.EmailAddress != "" {
		values.Set("email_address", o.EmailAddress)
	}

	setDateParam(values, "from", o.From)
	setDateParam(values, "to", o.To)
	setDateParam(values, "updated_from", o.UpdatedFrom)
	setDateParam(values, "updated_to", o.UpdatedTo)

	return values
}

// SubscriptionListOptions expresses the documented filters for the
// per-resource GET /{resource}/{id}/subscriptions endpoints.
type SubscriptionListOptions struct {
	Page            int
	SortOrder       string // "asc" or "desc"
	SubscriberState string // "active" or "cancelled"
}

// NewSubscriptionListOptions creates empty subscription list options.
func NewSubscriptionListOptions() *SubscriptionListOptions {
	return &SubscriptionListOptions{}
}

// ToValues converts the options to url.Values.
func (o *SubscriptionListOptions) ToValues() url.Values {
	values := url.Values{}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.SortOrder != "" {
		values.Set("sort_order", o.SortOrder)
	}

	if o.SubscriberState != "" {
		values.Set("subscriber_state", o.SubscriberState)
	}

	return values
}

// The API accepts dates in YYYY-MM-DD form.
func setDateParam(values url.Values, key string, t *time.Time) {
	if t != nil {
		values.Set(key, t.Format("2006-01-02"))
	}
}
