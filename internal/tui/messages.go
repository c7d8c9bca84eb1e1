package tui

import (
	"github.com/anaszait/tadabbur/models"
)

type authDoneMsg struct {
	session models.Session
}

type syncDoneMsg struct {
	err error
}

type projectsLoadedMsg struct {
	projects []models.Project
	err      error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

// savedMsg reports the outcome of any write (note, project, move). A nil
// err sends the user back to the listing.
type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type verseLoadedMsg struct {
	verse models.Verse
	err   error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
