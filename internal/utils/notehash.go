package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/anaszait/tadabbur/models"
)

// NoteContentHash computes a stable SHA-256 digest over the fields of a
// note that matter for sync conflict detection: reference, text, project
// membership and the audio attachment. Timestamps and version are
// deliberately excluded so that equal content hashes equal regardless of
// where the note was produced.
func NoteContentHash(n models.Note) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(n.Surah)))
	h.Write([]byte{':'})
	h.Write([]byte(strconv.Itoa(n.Verse)))
	h.Write([]byte{0})
	h.Write([]byte(n.Text))
	h.Write([]byte{0})
	h.Write([]byte(n.ProjectID))
	h.Write([]byte{0})
	h.Write([]byte(n.AudioURL))
	return hex.EncodeToString(h.Sum(nil))
}
