package convertkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The subscribe endpoints wrap their result in a {"subscription": ...}
// envelope and name the subscriber's email "email_address". These keys
// are load-bearing for every caller, so pin them down.
func TestSubscription_WireFormat(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"subscription": {
			"id": 1,
			"state": "active",
			"source": "API::V3::SubscriptionsController",
			"subscribable_id": 5,
			"subscribable_type": "tag",
			"subscriber": {
				"id": 9,
				"first_name": "Ada",
				"email_address": "a@b.com",
				"state": "active"
			}
		}
	}`)

	var envelope struct {
		Subscription Subscription `json:"subscription"`
	}

	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.Equal(t, int64(1), envelope.Subscription.ID)
	assert.Equal(t, int64(5), envelope.Subscription.SubscribableID)
	assert.Equal(t, "tag", envelope.Subscription.SubscribableType)
	assert.Equal(t, "a@b.com", envelope.Subscription.Subscriber.EmailAddress)
	assert.Equal(t, "Ada", envelope.Subscription.Subscriber.FirstName)
}

func TestSubscribeRequest_OmitsEmptyFields(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&SubscribeRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email": "a@b.com"}`, string(data))

	data, err = json.Marshal(&SubscribeRequest{
		Email:     "a@b.com",
		FirstName: "Ada",
		Fields:    map[string]string{"company": "Acme"},
		Tags:      []int64{5},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"email": "a@b.com",
		"first_name": "Ada",
		"fields": {"company": "Acme"},
		"tags": [5]
	}`, string(data))
}
