package domain_test

import (
	"testing"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityType(t *testing.T) {
	cases := []struct {
		in   string
		want domain.EntityType
	}{
		{"class", domain.EntityClass},
		{"Class", domain.EntityClass},
		{"Data Property", domain.EntityDataProperty},
		{"dataproperty", domain.EntityDataProperty},
		{"Object property", domain.EntityObjectProperty},
		{"Annotation Property", domain.EntityAnnotationProperty},
		{"Individual", domain.EntityIndividual},
	}
	for _, tc := range cases {
		got, err := domain.ParseEntityType(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseEntityType_Invalid(t *testing.T) {
	_, err := domain.ParseEntityType("")
	assert.Error(t, err)

	_, err = domain.ParseEntityType("relation")
	assert.Error(t, err)
}

func TestIsTrueString(t *testing.T) {
	for _, s := range []string{"t", "T", "true", "TRUE", "y", "Yes", " yes "} {
		assert.True(t, domain.IsTrueString(s), s)
	}
	for _, s := range []string{"", "f", "false", "no", "0", "1"} {
		assert.False(t, domain.IsTrueString(s), s)
	}
}
