package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbandrop/storefront/pkg/schema"
)

// jsonSerde stands in for the registry-backed serde in codec tests.
type jsonSerde struct{}

func (jsonSerde) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonSerde) Decode(b []byte, v any) error {
	return json.Unmarshal(b, v)
}

func TestDiscontinuedValueCodec(t *testing.T) {
	codec := discontinuedValueCodec{}

	t.Run("RoundTrip", func(t *testing.T) {
		data, err := codec.Encode(discontinuedValue(true))
		require.NoError(t, err)

		v, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, discontinuedValue(true), v)
	})

	t.Run("RejectsForeignType", func(t *testing.T) {
		_, err := codec.Encode("true")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValueType)
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		_, err := codec.Decode([]byte("maybe"))
		assert.Error(t, err)
	})
}

func TestStatusEventCodec(t *testing.T) {
	codec := newStatusEventCodec(jsonSerde{})

	t.Run("RoundTrip", func(t *testing.T) {
		event := schema.ProductStatusV1{ProductID: 7, Discontinued: true}

		data, err := codec.Encode(event)
		require.NoError(t, err)

		v, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, event, v)
	})

	t.Run("RejectsForeignType", func(t *testing.T) {
		_, err := codec.Encode(schema.ProductV1{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValueType)
	})
}

func TestProductEventCodec(t *testing.T) {
	codec := newProductEventCodec(jsonSerde{})

	t.Run("RoundTrip", func(t *testing.T) {
		event := schema.ProductV1{
			ID:    1,
			Name:  "Vintage Denim Jacket",
			Price: 89.99,
			Sizes: []string{"S", "M", "L"},
		}

		data, err := codec.Encode(event)
		require.NoError(t, err)

		v, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, event, v)
	})

	t.Run("RejectsForeignType", func(t *testing.T) {
		_, err := codec.Encode(42)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValueType)
	})
}
