package pricing

import (
	"testing"

	"storefront/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Total(t *testing.T) {
	tests := []struct {
		name          string
		items         []model.CheckoutItem
		expectedTotal string
	}{
		{
			name: "Single item",
			items: []model.CheckoutItem{
				{ProductID: 1, ProductName: "Mug", Price: "9.99", Quantity: 2},
			},
			expectedTotal: "19.98",
		},
		{
			name: "No binary float drift",
			items: []model.CheckoutItem{
				{ProductID: 1, ProductName: "A", Price: "0.10", Quantity: 1},
				{ProductID: 2, ProductName: "B", Price: "0.20", Quantity: 1},
			},
			expectedTotal: "0.3",
		},
		{
			name: "Mixed quantities",
			items: []model.CheckoutItem{
				{ProductID: 1, ProductName: "A", Price: "19.99", Quantity: 3},
				{ProductID: 2, ProductName: "B", Price: "0.01", Quantity: 7},
				{ProductID: 3, ProductName: "C", Price: "100", Quantity: 1},
			},
			expectedTotal: "160.04",
		},
		{
			name: "Free item",
			items: []model.CheckoutItem{
				{ProductID: 1, ProductName: "Sample", Price: "0", Quantity: 5},
			},
			expectedTotal: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Normalize(tt.items)

			require.NoError(t, err)
			require.NotNil(t, quote)
			assert.Len(t, quote.Lines, len(tt.items))

			expected, err := decimal.NewFromString(tt.expectedTotal)
			require.NoError(t, err)
			assert.True(t, quote.Total.Equal(expected),
				"expected total %s, got %s", expected, quote.Total)
		})
	}
}

func TestNormalize_MinorUnits(t *testing.T) {
	tests := []struct {
		name          string
		price         string
		expectedMinor int64
	}{
		{"Two decimal places", "9.99", 999},
		{"Whole amount", "25", 2500},
		{"Rounds half up", "9.995", 1000},
		{"Sub-cent rounds down", "0.004", 0},
		{"Zero", "0.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Normalize([]model.CheckoutItem{
				{ProductID: 1, ProductName: "P", Price: tt.price, Quantity: 1},
			})

			require.NoError(t, err)
			require.Len(t, quote.Lines, 1)
			assert.Equal(t, tt.expectedMinor, quote.Lines[0].UnitAmountMinor)
		})
	}
}

func TestNormalize_InvalidPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{"Non-numeric", "abc"},
		{"Empty", ""},
		{"Negative", "-5.00"},
		{"Trailing garbage", "9.99x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Normalize([]model.CheckoutItem{
				{ProductID: 1, ProductName: "Mug", Price: tt.price, Quantity: 1},
			})

			require.Error(t, err)
			assert.Nil(t, quote)

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, model.ErrCodeInvalidPrice, domainErr.Code)
			assert.Contains(t, domainErr.Message, "Mug")
		})
	}
}

func TestNormalize_InvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		quote, err := Normalize([]model.CheckoutItem{
			{ProductID: 1, ProductName: "Mug", Price: "9.99", Quantity: quantity},
		})

		require.Error(t, err)
		assert.Nil(t, quote)
		assert.Equal(t, model.ErrInvalidQuantity, err)
	}
}

func TestNormalize_EmptyItems(t *testing.T) {
	quote, err := Normalize(nil)

	require.Error(t, err)
	assert.Nil(t, quote)
	assert.Equal(t, model.ErrMissingCheckoutData, err)
}

func TestSanitizeImageURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Valid https", "https://cdn.example.com/mug.png", "https://cdn.example.com/mug.png"},
		{"Valid http", "http://cdn.example.com/mug.png", "http://cdn.example.com/mug.png"},
		{"Backslashes normalised", `https:\\cdn.example.com\mug.png`, "https://cdn.example.com/mug.png"},
		{"Relative path dropped", "uploads/mug.png", ""},
		{"Local path dropped", `C:\uploads\mug.png`, ""},
		{"Non-http scheme dropped", "ftp://cdn.example.com/mug.png", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeImageURL(tt.raw))
		})
	}
}
