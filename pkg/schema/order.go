package schema

const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "order_placed",
	"fields": [
		{"name": "session_id", "type": "string"},
		{"name": "lines", "type": {"type": "array", "items": {
			"type": "record",
			"name": "order_line",
			"fields": [
				{"name": "product_id", "type": "long"},
				{"name": "name", "type": "string"},
				{"name": "price", "type": "double"},
				{"name": "size", "type": "string"},
				{"name": "quantity", "type": "int"}
			]
		}}},
		{"name": "total", "type": "string"},
		{"name": "locale", "type": "string"},
		{"name": "recipient", "type": "string"},
		{"name": "placed_at", "type": "long"}
	]
}`

type (
	OrderPlacedV1 struct {
		SessionID string        `avro:"session_id"`
		Lines     []OrderLineV1 `avro:"lines"`
		// Total is the exact decimal amount rendered with two
		// fraction digits, e.g. "149.90".
		Total     string `avro:"total"`
		Locale    string `avro:"locale"`
		Recipient string `avro:"recipient"`
		// PlacedAt is unix epoch milliseconds.
		PlacedAt int64 `avro:"placed_at"`
	}

	OrderLineV1 struct {
		ProductID int64   `avro:"product_id"`
		Name      string  `avro:"name"`
		Price     float64 `avro:"price"`
		Size      string  `avro:"size"`
		Quantity  int     `avro:"quantity"`
	}
)
