package schedule

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/ampliy/ampliy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettings(t *testing.T) {
	settings, err := NewSettings(config.Defaults().Schedule)
	require.NoError(t, err)

	assert.Equal(t, "America/Sao_Paulo", settings.Location().String())
	assert.Equal(t, 2025, settings.BaseDate.Year())
	assert.Equal(t, time.October, settings.BaseDate.Month())
	assert.Equal(t, 30, settings.BaseDate.Day())
	assert.Zero(t, settings.BaseDate.Hour())
	assert.Equal(t, Cursor{Year: 2025, Month: time.October}, settings.BaseCursor())
	assert.Equal(t, time.Hour, settings.ClassDuration)
}

func TestNewSettings_InvalidValues(t *testing.T) {
	cfg := config.Defaults().Schedule
	cfg.Timezone = "Mars/Olympus"
	_, err := NewSettings(cfg)
	assert.Error(t, err)

	cfg = config.Defaults().Schedule
	cfg.BaseDate = "30/10/2025"
	_, err = NewSettings(cfg)
	assert.Error(t, err)
}

func TestCursor(t *testing.T) {
	c := Cursor{Year: 2025, Month: time.December}

	assert.Equal(t, Cursor{Year: 2026, Month: time.January}, c.AddMonths(1))
	assert.Equal(t, Cursor{Year: 2024, Month: time.December}, c.AddMonths(-12))
	assert.True(t, Cursor{Year: 2025, Month: time.October}.Before(c))
	assert.False(t, c.Before(c))
	assert.Equal(t, 31, c.DaysInMonth())
	assert.Equal(t, 29, Cursor{Year: 2028, Month: time.February}.DaysInMonth())
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, brt), c.FirstDay(brt))
}
