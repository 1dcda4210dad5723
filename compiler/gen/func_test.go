package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Username", "username"},
		{"FullName", "full_name"},
		{"HTTPCode", "http_code"},
		{"ProductCategory", "product_category"},
		{"already_snake", "already_snake"},
		{"A", "a"},
		{"", ""},
		{"userInfo", "user_info"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, snake(tt.input))
		})
	}
}

func TestModelName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Product", "Product"},
		{`App\Models\Product`, "Product"},
		{"App/Models/Product", "Product"},
		{"app/Models/order_item.php", "OrderItem"},
		{"  Product ", "Product"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ModelName(tt.input))
		})
	}
}

func TestTableName(t *testing.T) {
	tests := []struct {
		model    string
		expected string
	}{
		{"Product", "products"},
		{"OrderItem", "order_items"},
		{"Category", "categories"},
		{"Person", "people"},
		{"Status", "statuses"},
		{"Child", "children"},
		{"Bus", "buses"},
		{"SalesPerson", "sales_people"},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.expected, TableName(tt.model))
		})
	}
}

func TestRouteSegment(t *testing.T) {
	assert.Equal(t, "products", routeSegment("Product"))
	assert.Equal(t, "order-items", routeSegment("OrderItem"))
	assert.Equal(t, "people", routeSegment("Person"))
	assert.Equal(t, "statuses", routeSegment("Status"))
	assert.Equal(t, "children", routeSegment("Child"))
	assert.Equal(t, "buses", routeSegment("Bus"))
}

func TestVersionDir(t *testing.T) {
	assert.Equal(t, "V1", versionDir("v1"))
	assert.Equal(t, "V2", versionDir("v2"))
}

func TestModelClass(t *testing.T) {
	assert.Equal(t, `\App\Models\Category`, modelClass(`App\Models`, "Category"))
	assert.Equal(t, `\App\Models\Category`, modelClass(`\App\Models\`, "Category"))
}
