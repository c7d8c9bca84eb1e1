package models

// Verse is the result of a verse-text lookup against the external Qur'an
// text API: the Arabic text of a single ayah plus one configured
// translation.
type Verse struct {
	Surah int `json:"surah"`
	Verse int `json:"verse"`

	// SurahName is the transliterated name of the chapter (e.g. "Al-Baqarah").
	SurahName string `json:"surah_name,omitempty"`

	// Arabic is the ayah text in the Uthmani script.
	Arabic string `json:"arabic"`

	// Translation is the ayah text in the configured translation edition.
	Translation string `json:"translation,omitempty"`

	// Edition identifies the translation edition (e.g. "en.sahih").
	Edition string `json:"edition,omitempty"`
}
