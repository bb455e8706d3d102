package entity_test

import (
	"testing"

	"goblog/internal/entity"

	"github.com/stretchr/testify/require"
)

func TestParseCategory_Valid(t *testing.T) {
	for _, name := range []string{"Career", "Finance", "Travel", "Technology", "Health", "Other"} {
		c, err := entity.ParseCategory(name)
		require.NoError(t, err)
		require.Equal(t, name, c.String())
	}
}

func TestParseCategory_Invalid(t *testing.T) {
	for _, name := range []string{"", "career", "Sports", "TECHNOLOGY", "Finance "} {
		_, err := entity.ParseCategory(name)
		require.Error(t, err, "category %q should be rejected", name)
	}
}
