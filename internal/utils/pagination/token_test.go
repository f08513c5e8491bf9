package pagination_test

import (
	"testing"
	"time"

	"github.com/bizbooks/ledger/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	occurredAt := time.Date(2025, 6, 1, 15, 4, 5, 123456789, time.UTC)
	token := pagination.EncodeToken(occurredAt, 42)

	gotTime, gotSeq, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, occurredAt.Equal(gotTime))
	assert.Equal(t, int64(42), gotSeq)
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken("aGVsbG8=") // "hello", no separator
	assert.Error(t, err)
}
