package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	name, err := ParseName(" Shipping ")
	require.NoError(t, err)
	assert.Equal(t, SectionShipping, name)

	_, err = ParseName("payments")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestDefaultsAreValid(t *testing.T) {
	for _, name := range Names {
		section, err := Defaults(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, section.Name())
		assert.NoError(t, section.Validate(), name)
	}

	_, err := Defaults("payments")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestDecode(t *testing.T) {
	section, err := Decode(SectionStore, []byte(`{"storeName":"Verdante","currency":"AED","contactEmail":"hi@verdante.shop"}`))
	require.NoError(t, err)
	store, ok := section.(*StoreSettings)
	require.True(t, ok)
	assert.Equal(t, "AED", store.Currency)
	assert.Equal(t, "en", store.DefaultLocale, "unset fields keep defaults")

	_, err = Decode(SectionStore, []byte(`{"storeName":"x","unknown":1}`))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Decode(SectionSEO, []byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Decode("payments", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		valid   bool
	}{
		{"store ok", StoreSettings{StoreName: "V", Currency: "SAR"}, true},
		{"store lowercase currency", StoreSettings{StoreName: "V", Currency: "sar"}, false},
		{"store long currency", StoreSettings{StoreName: "V", Currency: "SARR"}, false},
		{"store missing name", StoreSettings{Currency: "SAR"}, false},
		{"store bad email", StoreSettings{StoreName: "V", Currency: "SAR", ContactEmail: "nope"}, false},
		{"shipping ok", ShippingSettings{FlatRate: 20, FreeShippingThreshold: 200, EstimatedDaysMin: 1, EstimatedDaysMax: 3}, true},
		{"shipping negative rate", ShippingSettings{FlatRate: -1}, false},
		{"shipping negative threshold", ShippingSettings{FreeShippingThreshold: -1}, false},
		{"shipping inverted days", ShippingSettings{EstimatedDaysMin: 5, EstimatedDaysMax: 2}, false},
		{"social ok", SocialSettings{Instagram: "https://instagram.com/verdante"}, true},
		{"social bad link", SocialSettings{Facebook: "facebook.com/verdante"}, false},
		{"seo ok", SEOSettings{MetaTitle: "Plants"}, true},
		{"seo long title", SEOSettings{MetaTitle: string(make([]rune, 71))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.section.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
