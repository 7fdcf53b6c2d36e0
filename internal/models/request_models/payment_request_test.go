package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	cases := map[string]string{
		"object": `{"order_id":"RAD-123456-ABC"}`,
		"string":  `"{\"order_id\":\"RAD-123456-ABC\"}"`,
	}
	for name, raw := range cases {
		d := PaystackChargeData{Metadata: json.RawMessage(raw)}
		m, err := d.ParseMetadata()
		require.NoError(t, err, name)
		assert.Equal(t, "RAD-123456-ABC", m.OrderID, name)
	}

	m, err := PaystackChargeData{Metadata: json.RawMessage(`""`)}.ParseMetadata()
	require.NoError(t, err)
	assert.Empty(t, m.OrderID)
	assert.Nil(t, m.Order)
}
