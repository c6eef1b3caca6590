package schema

const ProductSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "product",
	"fields": [
		{"name": "id", "type": "long"},
		{"name": "name", "type": "string"},
		{"name": "description", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "sizes", "type": {"type": "array", "items": "string"}},
		{"name": "in_stock", "type": "boolean"},
		{"name": "images", "type": {"type": "array", "items": "string"}}
	]
}`

type ProductV1 struct {
	ID          int64    `avro:"id"`
	Name        string   `avro:"name"`
	Description string   `avro:"description"`
	Category    string   `avro:"category"`
	Price       float64  `avro:"price"`
	Sizes       []string `avro:"sizes"`
	InStock     bool     `avro:"in_stock"`
	Images      []string `avro:"images"`
}

const ProductStatusSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "product_status",
	"fields": [
		{"name": "product_id", "type": "long"},
		{"name": "discontinued", "type": "boolean"}
	]
}`

type ProductStatusV1 struct {
	ProductID    int64 `avro:"product_id"`
	Discontinued bool  `avro:"discontinued"`
}
