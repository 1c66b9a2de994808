package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Monstera Deliciosa (Large)", "monstera-deliciosa-large"},
		{"  --Hello__World--  ", "hello-world"},
		{"Fiddle-Leaf Fig", "fiddle-leaf-fig"},
		{"Ceramic Pot 20cm", "ceramic-pot-20cm"},
		{"نبتة", ""},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Slugify(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Slugify(got), "slugify must be idempotent")
			assert.NotContains(t, got, "--")
		})
	}
}

func TestParseFlag(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "yes", "Yes", "1", "on", " On "} {
		assert.True(t, ParseFlag(v), v)
	}
	for _, v := range []string{"false", "no", "0", "off", "", "y", "t", "2"} {
		assert.False(t, ParseFlag(v), v)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, SplitList(" a.jpg | | b.jpg |", "|"))
	assert.Equal(t, []string{"indoor", "low light", "indoor"}, SplitList("indoor, low light,,indoor", ","))
	assert.Empty(t, SplitList("", ","))
	assert.NotNil(t, SplitList("", ","))
}
