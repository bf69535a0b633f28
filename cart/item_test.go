package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		item Item
	}{
		{
			name: "single design",
			item: Item{
				ID:             "design-reindeer",
				Name:           "Reindeer Games",
				Description:    "Printable reindeer design",
				ImageURL:       "https://cdn.christmasfun.store/designs/reindeer.png",
				PriceReference: "price_reindeer",
				UnitPrice:      Cents(99),
				Detail:         Single{DesignNumber: 7},
			},
		},
		{
			name: "santa note",
			item: Item{
				ID:             "note-santa-3",
				Name:           "Santa Note #3",
				PriceReference: "price_note_3",
				UnitPrice:      Cents(199),
				Detail:         Note{NoteNumber: 3},
			},
		},
		{
			name: "bundle",
			item: Item{
				ID:             "bundle-all",
				Name:           "Complete Collection",
				PriceReference: "price_bundle",
				UnitPrice:      Cents(1999),
				Detail:         Bundle{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.item)
			require.NoError(t, err)

			var got Item
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.item, got)
		})
	}
}

func TestItemUnmarshalRejectsUnknownKind(t *testing.T) {
	var it Item
	err := json.Unmarshal([]byte(`{"id":"x","kind":"sticker","priceReference":"p","unitPriceCents":100}`), &it)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown item kind")
}

func TestCentsFormatting(t *testing.T) {
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "0.99", Cents(99).String())
	assert.Equal(t, "19.99", Cents(1999).String())
	assert.Equal(t, "-1.05", Cents(-105).String())
}
