package domain

// DefaultCountries is the onboarding list used until /countries answers
func DefaultCountries() []Country {
	return []Country{
		{Name: "India", AvailableLanguages: []string{
			"हिन्दी (Hindi)",
			"English",
			"தமிழ் (Tamil)",
			"తెలుగు (Telugu)",
			"ગુજરાતી (Gujarati)",
		}},
		{Name: "USA", AvailableLanguages: []string{"English", "Español (Spanish)"}},
		{Name: "UK", AvailableLanguages: []string{"English"}},
		{Name: "Canada", AvailableLanguages: []string{"English", "Français (French)"}},
		{Name: "France", AvailableLanguages: []string{"Français (French)"}},
		{Name: "Japan", AvailableLanguages: []string{"日本語 (Japanese)", "English"}},
		{Name: "China", AvailableLanguages: []string{"中文 (Chinese)"}},
		{Name: "Brazil", AvailableLanguages: []string{"Português (Portuguese)", "English"}},
	}
}
