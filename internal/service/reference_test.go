package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractReference(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		surah int
		verse int
		ok    bool
	}{
		{"colon form", "Reflecting on 2:255 today", 2, 255, true},
		{"colon with spaces", "see 2 : 255 again", 2, 255, true},
		{"q prefix", "Q2:255 is Ayat al-Kursi", 2, 255, true},
		{"spelled out", "Surah 2 verse 255 stopped me", 2, 255, true},
		{"spelled out ayah", "surah 18 ayah 10", 18, 10, true},
		{"short form", "note on s2 v255", 2, 255, true},
		{"spelled form wins over later colon", "surah 3 verse 8, also 2:255", 3, 8, true},
		{"surah out of range skipped", "chapter 115:1 but later 1:1", 1, 1, true},
		{"verse zero skipped", "2:0 is nothing, 2:1 is real", 2, 1, true},
		{"no reference", "just a plain thought", 0, 0, false},
		{"bare colon pair matches", "loved 23:59 here", 23, 59, true},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surah, verse, ok := ExtractReference(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.surah, surah)
			assert.Equal(t, tt.verse, verse)
		})
	}
}
