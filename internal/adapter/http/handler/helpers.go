package handler

// ValidLanguageModes contains all valid language mode values
var ValidLanguageModes = map[string]bool{
	"english":      true,
	"multilingual": true,
}

// IsValidLanguageMode checks if the given language mode is valid
func IsValidLanguageMode(mode string) bool {
	return ValidLanguageModes[mode]
}
