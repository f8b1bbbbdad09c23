package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Industries", "acme-industries"},
		{"Billing  Platform!", "billing-platform"},
		{"  Already-Slugged  ", "already-slugged"},
		{"Ops & Infra", "ops-infra"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestContains(t *testing.T) {
	values := []string{"low", "medium", "high"}
	assert.True(t, Contains(values, "medium"))
	assert.False(t, Contains(values, "urgent"))
}
