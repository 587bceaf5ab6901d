package entity

import (
	"strings"
	"testing"

	domainerrors "scout/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountID(t *testing.T) {
	id, err := NewAccountID(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.Int64())
	assert.Equal(t, "42", id.String())

	for _, v := range []int64{0, -1} {
		_, err := NewAccountID(v)
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	}
}

func TestParseAccountID(t *testing.T) {
	id, err := ParseAccountID(" 1001 ")
	require.NoError(t, err)
	assert.Equal(t, AccountID(1001), id)

	_, err = ParseAccountID("abc")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = ParseAccountID("0")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestNewCouponCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    CouponCode
		wantErr bool
	}{
		{name: "normalizes case and space", raw: "  spring-25 ", want: "SPRING-25"},
		{name: "already upper", raw: "ABC123", want: "ABC123"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "invalid characters", raw: "abc 123", wantErr: true},
		{name: "punctuation", raw: "ABC_123", wantErr: true},
		{name: "too long", raw: strings.Repeat("A", 65), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := NewCouponCode(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidation)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestGenerateCouponCode(t *testing.T) {
	seen := make(map[CouponCode]struct{})

	for range 1000 {
		code := GenerateCouponCode()
		assert.Len(t, code.String(), 26)

		normalized, err := NewCouponCode(code.String())
		require.NoError(t, err)
		assert.Equal(t, code, normalized)

		_, dup := seen[code]
		require.False(t, dup)
		seen[code] = struct{}{}
	}
}

func TestParseSearchPreference(t *testing.T) {
	p, err := ParseSearchPreference("sold")
	require.NoError(t, err)
	assert.Equal(t, SearchSold, p)

	p, err = ParseSearchPreference(" Ended ")
	require.NoError(t, err)
	assert.Equal(t, SearchEnded, p)

	_, err = ParseSearchPreference("pending")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	assert.Equal(t, SearchActive, DefaultSearchPreference)
}

func TestNewItemKeys(t *testing.T) {
	keys, err := NewItemKeys([]string{" 12345-ABC ", "brake pad"})
	require.NoError(t, err)
	assert.Equal(t, []ItemKey{"12345-ABC", "brake pad"}, keys)

	_, err = NewItemKeys([]string{"ok", " "})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = NewItemKey(strings.Repeat("é", 201))
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = NewItemKey(strings.Repeat("é", 200))
	assert.NoError(t, err)
}
