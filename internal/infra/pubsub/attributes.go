package pubsub

import (
	"encoding/json"

	"scout/internal/domain/entity"

	"github.com/pkg/errors"
)

// eventAttributes builds the message attributes used for filtering and tracing.
func eventAttributes(event *entity.BillingEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type.String(),
	}

	if event.AccountID != 0 {
		attributes["account_id"] = event.AccountID.String()
	}

	if event.CouponCode != "" {
		attributes["coupon_code"] = event.CouponCode.String()
	}

	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

func encodeEvent(event *entity.BillingEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}
