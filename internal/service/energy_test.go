package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcourse/quizcourse/internal/domain"
)

func TestEnergyService(t *testing.T) {
	ctx := context.Background()
	settings := newMemSettings()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := NewEnergyService(settings, 3)
	s.now = func() time.Time { return now }

	e, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Energy{Current: 3, Max: 3}, e)

	e, err = s.Consume(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Current)
	assert.Equal(t, []bool{true, true, false}, e.Segments())
	assert.Equal(t, "2", settings.values[energyKey])
	assert.Equal(t, "1714557600000", settings.values[energyUpdatedAtKey])

	e, err = s.Consume(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, e.Current)
	assert.True(t, e.Empty())

	_, err = s.StartPlay(ctx)
	assert.ErrorIs(t, err, ErrOutOfEnergy)

	e, err = s.Refill(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Current)

	e, err = s.StartPlay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Current)
	assert.True(t, e.UpdatedAt.Equal(now))
}

func TestEnergyService_Defaults(t *testing.T) {
	ctx := context.Background()
	settings := newMemSettings()
	settings.values[energyKey] = "42"

	s := NewEnergyService(settings, 0)
	e, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxEnergy, e.Max)
	assert.Equal(t, domain.DefaultMaxEnergy, e.Current, "stored values are clamped to max")

	settings.values[energyKey] = "garbage"
	e, err = s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxEnergy, e.Current)
}

func TestLanguageService(t *testing.T) {
	ctx := context.Background()
	settings := newMemSettings()
	s := NewLanguageService(settings, domain.LanguageSpanish)

	lang, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageSpanish, lang)

	require.NoError(t, s.Set(ctx, domain.LanguageEnglish))
	lang, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageEnglish, lang)

	assert.ErrorIs(t, s.Set(ctx, "fr"), ErrUnsupportedLanguage)

	settings.values[languageKey] = "de"
	lang, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageSpanish, lang)

	assert.Equal(t, domain.LanguageEnglish, NewLanguageService(settings, "").fallback)
}
