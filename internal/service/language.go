package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/repository"
)

const languageKey = "app.language"

var ErrUnsupportedLanguage = errors.New("unsupported language")

type LanguageService struct {
	settings SettingStore
	fallback domain.Language
}

func NewLanguageService(settings SettingStore, fallback domain.Language) *LanguageService {
	if !fallback.Valid() {
		fallback = domain.LanguageEnglish
	}

	return &LanguageService{settings: settings, fallback: fallback}
}

func (s *LanguageService) Get(ctx context.Context) (domain.Language, error) {
	raw, err := s.settings.Get(ctx, languageKey)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return s.fallback, nil
		}
		return "", fmt.Errorf("s.settings.Get -> %w", err)
	}

	lang := domain.Language(raw)
	if !lang.Valid() {
		return s.fallback, nil
	}

	return lang, nil
}

func (s *LanguageService) Set(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	return s.settings.Set(ctx, languageKey, string(lang))
}
