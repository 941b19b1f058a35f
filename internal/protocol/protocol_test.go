package protocol

import (
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocol(t *testing.T) {
	t.Run("ValidateName", func(t *testing.T) {
		t.Run("should accept valid names", func(t *testing.T) {
			for _, name := range []string{
				"Eric",
				"bob",
				faker.UUIDHyphenated(),
				"Ærøskøbing",
				strings.Repeat("a", MaxNameBytes),
			} {
				assert.NoError(t, ValidateName(name), name)
			}
		})
		t.Run("should reject invalid names", func(t *testing.T) {
			for _, name := range []string{
				"",
				"with space",
				"tab\tname",
				"colon:name",
				"bell\x07",
				string([]byte{0xff, 0xfe}),
				strings.Repeat("a", MaxNameBytes+1),
			} {
				assert.ErrorIs(t, ValidateName(name), ErrInvalidName, name)
			}
		})
		t.Run("should be case sensitive", func(t *testing.T) {
			require.NoError(t, ValidateName("eric"))
			require.NoError(t, ValidateName("Eric"))
		})
	})

	t.Run("DecodeRoute", func(t *testing.T) {
		t.Run("should split recipient and body", func(t *testing.T) {
			to := faker.Username()
			body := faker.Sentence()
			gotTo, gotBody, err := DecodeRoute(EncodeRoute(to, body))
			require.NoError(t, err)
			assert.Equal(t, to, gotTo)
			assert.Equal(t, body, gotBody)
		})
		t.Run("should allow empty body", func(t *testing.T) {
			to := faker.Username()
			gotTo, gotBody, err := DecodeRoute(to + " ")
			require.NoError(t, err)
			assert.Equal(t, to, gotTo)
			assert.Empty(t, gotBody)
		})
		t.Run("should keep separators in the body", func(t *testing.T) {
			_, gotBody, err := DecodeRoute("Eric hi  there ")
			require.NoError(t, err)
			assert.Equal(t, "hi  there ", gotBody)
		})
		t.Run("should fail if separator is missing", func(t *testing.T) {
			_, _, err := DecodeRoute(faker.Username())
			assert.ErrorIs(t, err, ErrMissingSeparator)
		})
		t.Run("should fail if recipient is not a valid name", func(t *testing.T) {
			_, _, err := DecodeRoute(" " + faker.Sentence())
			assert.ErrorIs(t, err, ErrInvalidName)

			_, _, err = DecodeRoute("a:b " + faker.Sentence())
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	})

	t.Run("DecodeDelivery", func(t *testing.T) {
		t.Run("should split sender and body", func(t *testing.T) {
			from := faker.Username()
			body := faker.Sentence()
			gotFrom, gotBody, ok := DecodeDelivery(EncodeDelivery(from, body))
			require.True(t, ok)
			assert.Equal(t, from, gotFrom)
			assert.Equal(t, body, gotBody)
		})
		t.Run("should not decode lines without sender", func(t *testing.T) {
			_, _, ok := DecodeDelivery(faker.Username())
			assert.False(t, ok)

			_, _, ok = DecodeDelivery("ERR: BAD_LINE")
			assert.False(t, ok)
		})
	})

	t.Run("ParseErrorResponse", func(t *testing.T) {
		t.Run("should extract error code", func(t *testing.T) {
			for _, code := range []string{CodeBadName, CodeNameInUse, CodeBadLine} {
				got, ok := ParseErrorResponse(ErrorResponse(code))
				require.True(t, ok)
				assert.Equal(t, code, got)
			}
		})
		t.Run("should ignore other lines", func(t *testing.T) {
			_, ok := ParseErrorResponse(EncodeDelivery(faker.Username(), faker.Sentence()))
			assert.False(t, ok)

			_, ok = ParseErrorResponse("ERR: ")
			assert.False(t, ok)
		})
	})
}
