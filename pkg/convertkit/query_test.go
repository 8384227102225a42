package convertkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriberListOptions_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("zero options produce empty values", func(t *testing.T) {
		values := NewSubscriberListOptions().ToValues()
		assert.Empty(t, values)
	})

	t.Run("all filters set", func(t *testing.T) {
		from := time.Date(2026, 1, 15, 23, 59, 0, 0, time.UTC)
		to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		opts := &SubscriberListOptions{
			Page:         3,
			SortOrder:    "desc",
			SortField:    "cancelled_at",
			EmailAddress: "a@b.com",
			From:         &from,
			To:           &to,
		}

		values := opts.ToValues()
		assert.Equal(t, "3", values.Get("page"))
		assert.Equal(t, "desc", values.Get("sort_order"))
		assert.Equal(t, "cancelled_at", values.Get("sort_field"))
		assert.Equal(t, "a@b.com", values.Get("email_address"))
		assert.Equal(t, "2026-01-15", values.Get("from"))
		assert.Equal(t, "2026-02-01", values.Get("to"))
		assert.Empty(t, values.Get("updated_from"))
	})

	t.Run("builder helpers", func(t *testing.T) {
		values := NewSubscriberListOptions().
			WithPage(2).
			WithEmailAddress("a@b.com").
			ToValues()

		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "a@b.com", values.Get("email_address"))
	})
}

func TestSubscriptionListOptions_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("zero options produce empty values", func(t *testing.T) {
		values := NewSubscriptionListOptions().ToValues()
		assert.Empty(t, values)
	})

	t.Run("all filters set", func(t *testing.T) {
		opts := &SubscriptionListOptions{
			Page:            2,
			SortOrder:       "asc",
			SubscriberState: "cancelled",
		}

		values := opts.ToValues()
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "asc", values.Get("sort_order"))
		assert.Equal(t, "cancelled", values.Get("subscriber_state"))
	})
}
