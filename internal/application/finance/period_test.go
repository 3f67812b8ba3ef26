package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obame-dev/editions-api/internal/application/finance"
)

func TestParsePeriod_BornesAbsentes(t *testing.T) {
	start, end, err := finance.ParsePeriod("", "")
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)
}

// La borne de fin couvre toute la journée : 23:59:59.999.
func TestParsePeriod_FinDeJourneeIncluse(t *testing.T) {
	start, end, err := finance.ParsePeriod("2026-01-01", "2026-01-31")
	require.NoError(t, err)
	require.NotNil(t, start)
	require.NotNil(t, end)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, start.Location()), *start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, int(999*time.Millisecond), end.Nanosecond())
	assert.Equal(t, 31, end.Day())
}

func TestParsePeriod_FormatInvalide(t *testing.T) {
	_, _, err := finance.ParsePeriod("01/01/2026", "")
	assert.Error(t, err)

	_, _, err = finance.ParsePeriod("", "31-01-2026")
	assert.Error(t, err)
}

func TestParsePeriod_DebutApresFin(t *testing.T) {
	_, _, err := finance.ParsePeriod("2026-02-01", "2026-01-01")
	assert.Error(t, err)
}

// Une seule borne est acceptée : période ouverte de l'autre côté.
func TestParsePeriod_BorneUnique(t *testing.T) {
	start, end, err := finance.ParsePeriod("2026-01-01", "")
	require.NoError(t, err)
	assert.NotNil(t, start)
	assert.Nil(t, end)

	start, end, err = finance.ParsePeriod("", "2026-01-31")
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.NotNil(t, end)
}
