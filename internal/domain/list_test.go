package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueryNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListQuery
		want ListQuery
	}{
		{"defaults", ListQuery{}, ListQuery{Page: 1, Limit: 20}},
		{"negative page", ListQuery{Page: -3, Limit: 10}, ListQuery{Page: 1, Limit: 10}},
		{"explicit page survives a search", ListQuery{Search: "lens", Page: 4, Limit: 10}, ListQuery{Search: "lens", Page: 4, Limit: 10}},
		{"search without page defaults to 1", ListQuery{Search: "lens", Limit: 10}, ListQuery{Search: "lens", Page: 1, Limit: 10}},
		{"plain paging survives", ListQuery{Page: 4, Limit: 10}, ListQuery{Page: 4, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestValidLocale(t *testing.T) {
	assert.True(t, ValidLocale("tr"))
	assert.True(t, ValidLocale("en"))
	assert.False(t, ValidLocale("de"))
	assert.False(t, ValidLocale(""))
	assert.False(t, ValidLocale("TR"))
}

func TestValidSection(t *testing.T) {
	for _, s := range []string{"site", "colors", "contact", "social", "working-hours", "maps", "seo", "about"} {
		assert.True(t, ValidSection(s), s)
	}
	assert.False(t, ValidSection("theme"))
	assert.False(t, ValidSection(""))
}

func TestEmptyList(t *testing.T) {
	list := EmptyList[FAQ]()
	assert.NotNil(t, list.Data)
	assert.Empty(t, list.Data)
	assert.Zero(t, list.Total)
}
