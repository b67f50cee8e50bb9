package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromUnixSeconds(t *testing.T) {
	assert.True(t, FromUnixSeconds(0).IsZero())
	assert.True(t, FromUnixSeconds(-1).IsZero())

	got := FromUnixSeconds(1700000000)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 2023, got.Year())
}

func TestFormatRFC3339(t *testing.T) {
	assert.Equal(t, "", FormatRFC3339(time.Time{}))
	assert.Equal(t, "2023-11-14T22:13:20Z", FormatRFC3339(FromUnixSeconds(1700000000)))
}
