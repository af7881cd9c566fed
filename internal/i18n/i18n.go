// Package i18n holds the static bilingual text dictionary and its lookup
// helpers. Keys are flat dotted paths; lookups that miss return the key
// itself so untranslated strings stay visible instead of blank.
//
// No pluralisation or locale negotiation is performed: this is a fixed
// two-language table.
package i18n

import "github.com/agrimercato/marketplace-client/internal/core/domain"

// T returns the translation of key in the given language, falling back to
// the default language's entry and finally to the key itself.
func T(lang domain.Language, key string) string {
	if dict, ok := dictionaries[lang]; ok {
		if msg, ok := dict[key]; ok {
			return msg
		}
	}
	if msg, ok := dictionaries[domain.DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// TranslateRole returns the display name for a role tag. Unknown tags
// come back verbatim.
func TranslateRole(lang domain.Language, role domain.Role) string {
	return T(lang, "roles."+string(role))
}

// TranslateRoleDescription returns the long description for a role tag.
func TranslateRoleDescription(lang domain.Language, role domain.Role) string {
	return T(lang, "roleDescriptions."+string(role))
}

// TranslateBool renders a boolean as a localised yes/no.
func TranslateBool(lang domain.Language, v bool) string {
	if v {
		return T(lang, "yes")
	}
	return T(lang, "no")
}

// Languages lists the supported dictionary languages.
func Languages() []domain.Language {
	return []domain.Language{domain.LanguageItalian, domain.LanguageEnglish}
}
