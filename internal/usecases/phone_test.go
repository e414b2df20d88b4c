package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"

	domainErrors "cvnest.backend/internal/domain/errors"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"bare local", "5321234567", "+905321234567"},
		{"trunk zero", "05321234567", "+905321234567"},
		{"country prefixed", "905321234567", "+905321234567"},
		{"international", "+905321234567", "+905321234567"},
		{"spaces and dashes", "0532 123-45-67", "+905321234567"},
		{"parentheses", "(532) 123 45 67", "+905321234567"},
		{"plus with spaces", "+90 532 123 45 67", "+905321234567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.raw, "90")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePhoneRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "532123"},
		{"too long", "90532123456789"},
		{"letters", "532abc4567"},
		{"plus mid string", "90+5321234567"},
		{"wrong country with plus", "+15321234567"},
		{"eleven digits no trunk zero", "15321234567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizePhone(tc.raw, "90")
			require.ErrorIs(t, err, domainErrors.ErrInvalidPhone)
		})
	}
}
