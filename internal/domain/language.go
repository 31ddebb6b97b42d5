package domain

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageSpanish
}
