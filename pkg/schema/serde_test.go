package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urbandrop/storefront/pkg/schema"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeProductV1(t *testing.T) {
	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeProductV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeProductV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("IdentifierAndSubjectOpts", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ProductSchemaTextV1,
		).Return(schemaID, nil)

		_, err := schema.NewSerdeProductV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ProductSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeProductV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		productValue1 := schema.ProductV1{
			ID:          1,
			Name:        "Vintage Denim Jacket",
			Description: "Classic 80s inspired denim jacket with authentic vintage wash.",
			Category:    "jackets",
			Price:       89.99,
			Sizes:       []string{"S", "M", "L"},
			InStock:     true,
			Images:      []string{"https://cdn.example.test/denim-jacket.jpg"},
		}

		encodedData, err := serde.Encode(productValue1)
		require.NoError(t, err)

		var productValue2 schema.ProductV1
		err = serde.Decode(encodedData, &productValue2)
		require.NoError(t, err)

		assert.Equal(t, productValue1, productValue2)
	})
}

func TestSerdeProductStatusV1(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 2
		subject := "statusTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ProductStatusSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeProductStatusV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		statusValue1 := schema.ProductStatusV1{
			ProductID:    7,
			Discontinued: true,
		}

		encodedData, err := serde.Encode(statusValue1)
		require.NoError(t, err)

		var statusValue2 schema.ProductStatusV1
		err = serde.Decode(encodedData, &statusValue2)
		require.NoError(t, err)

		assert.Equal(t, statusValue1, statusValue2)
	})
}

func TestSerdeOrderPlacedV1(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 3
		subject := "ordersTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.OrderPlacedSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeOrderPlacedV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		orderValue1 := schema.OrderPlacedV1{
			SessionID: "session-1",
			Lines: []schema.OrderLineV1{
				{
					ProductID: 1,
					Name:      "Vintage Denim Jacket",
					Price:     89.99,
					Size:      "M",
					Quantity:  2,
				},
			},
			Total:     "179.98",
			Locale:    "es",
			Recipient: "5215634596804",
			PlacedAt:  1756684800000,
		}

		encodedData, err := serde.Encode(orderValue1)
		require.NoError(t, err)

		var orderValue2 schema.OrderPlacedV1
		err = serde.Decode(encodedData, &orderValue2)
		require.NoError(t, err)

		assert.Equal(t, orderValue1, orderValue2)
	})
}
