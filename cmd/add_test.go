package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicekeeper/internal/model"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{"Banner Design:1:156", "Email Design:2:200.50"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.LineItem{Name: "Banner Design", Quantity: 1, Price: 156}, items[0])
	assert.Equal(t, model.LineItem{Name: "Email Design", Quantity: 2, Price: 200.50}, items[1])
}

func TestParseItems_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing fields", raw: "just-a-name"},
		{name: "bad quantity", raw: "x:two:10"},
		{name: "bad price", raw: "x:2:ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseItems([]string{tt.raw})
			assert.Error(t, err)
		})
	}
}
