package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anaszait/tadabbur/internal/service"
	"github.com/anaszait/tadabbur/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenProjects
	screenNotes
	screenDetail
	screenFormNote
	screenFormProject
	screenMove
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type deleteKind int

const (
	deleteNothing deleteKind = iota
	deleteNote
	deleteProject
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	welcome     welcomeModel
	login       loginModel
	register    registerModel
	projects    projectsModel
	notes       notesModel
	detail      detailModel
	formNote    formNoteModel
	formProject formProjectModel
	move        moveModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	pendingKind   deleteKind
	logout        bool
	resultSession models.Session
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		projects:      newProjectsModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.currentScreen = screenProjects
	m.projects.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadProjects()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDeletePending()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
				m.pendingKind = deleteNothing
			}
			return m, nil
		}
	case authDoneMsg:
		m.resultSession = msg.session
		return m, tea.Quit
	case projectsLoadedMsg:
		m.projects.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.projects.items = msg.projects
		m.projects.idx = clampIndex(m.projects.idx, len(m.projects.items))
		return m, nil
	case notesLoadedMsg:
		m.notes.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.notes.items = msg.notes
		m.notes.idx = clampIndex(m.notes.idx, len(m.notes.items))
		return m, nil
	case syncDoneMsg:
		m.projects.syncing = false
		if msg.err != nil {
			m.showErrorf("Server unreachable, changes will sync later")
		}
		return m, m.cmdReloadCurrent()
	case savedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		switch m.currentScreen {
		case screenFormProject:
			m.currentScreen = screenProjects
			return m, m.cmdLoadProjects()
		case screenFormNote, screenMove, screenDetail:
			m.currentScreen = screenNotes
			return m, m.cmdLoadNotes()
		}
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		kind := m.pendingKind
		m.pendingDelete = ""
		m.pendingKind = deleteNothing
		if kind == deleteProject {
			m.currentScreen = screenProjects
			return m, m.cmdLoadProjects()
		}
		m.currentScreen = screenNotes
		return m, m.cmdLoadNotes()
	case verseLoadedMsg:
		if msg.err != nil {
			m.detail.status = "Verse lookup failed: " + msg.err.Error()
			return m, cmdClearStatus()
		}
		verse := msg.verse
		m.detail.verse = &verse
		return m, nil
	case copiedMsg:
		m.detail.status = "Share link copied!"
		m.notes.status = "Share link copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.notes.status = ""
		m.projects.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.projects.syncing {
			var cmd tea.Cmd
			m.projects.spinner, cmd = m.projects.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenProjects:
		return m.updateProjects(msg)
	case screenNotes:
		return m.updateNotes(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenFormNote:
		return m.updateFormNote(msg)
	case screenFormProject:
		return m.updateFormProject(msg)
	case screenMove:
		return m.updateMove(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenProjects:
		body = m.projects.View()
	case screenNotes:
		body = m.notes.View()
	case screenDetail:
		body = m.detail.View()
	case screenFormNote:
		body = m.formNote.View()
	case screenFormProject:
		body = m.formProject.View()
	case screenMove:
		body = m.move.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.formNote.submitting = v
	m.formProject.submitting = v
}

// ── per-screen updates ───────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.User{Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if name == "" || email == "" || pass == "" {
				m.showErrorf("Name, email and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.User{Name: name, Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.projects.idx > 0 {
			m.projects.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.projects.idx < len(m.projects.items)-1 {
			m.projects.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		project, ok := m.projects.current()
		if !ok {
			return m, nil
		}
		m.notes = notesModel{project: project, loading: true}
		m.currentScreen = screenNotes
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.newItem):
		m.formProject = newFormProjectModel(nil)
		m.currentScreen = screenFormProject
	case key.Matches(keyMsg, keys.edit):
		project, ok := m.projects.current()
		if !ok {
			return m, nil
		}
		m.formProject = newFormProjectModel(&project)
		m.currentScreen = screenFormProject
	case key.Matches(keyMsg, keys.delete):
		project, ok := m.projects.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = project.Name
		m.pendingDelete = project.ProjectID
		m.pendingKind = deleteProject
	case key.Matches(keyMsg, keys.sync):
		if m.projects.syncing {
			return m, nil
		}
		m.projects.syncing = true
		return m, tea.Batch(m.projects.spinner.Tick, m.cmdSync())
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateNotes(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.notes.idx > 0 {
			m.notes.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.notes.idx < len(m.notes.items)-1 {
			m.notes.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.notes.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{note: note}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.formNote = newFormNoteModel(m.notes.project.ProjectID, nil)
		m.currentScreen = screenFormNote
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.notes.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = note.Reference() + " " + fitText(firstLine(note.Text), 30)
		m.pendingDelete = note.NoteID
		m.pendingKind = deleteNote
	case key.Matches(keyMsg, keys.sync):
		if m.projects.syncing {
			return m, nil
		}
		m.projects.syncing = true
		return m, tea.Batch(m.projects.spinner.Tick, m.cmdSync())
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenProjects
		return m, m.cmdLoadProjects()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenNotes
		return m, nil
	case key.Matches(keyMsg, keys.verse):
		note := m.detail.note
		return m, m.cmdLookupVerse(note.Surah, note.Verse)
	case key.Matches(keyMsg, keys.edit):
		note := m.detail.note
		m.formNote = newFormNoteModel(note.ProjectID, &note)
		m.currentScreen = screenFormNote
		return m, nil
	case key.Matches(keyMsg, keys.move):
		targets := make([]models.Project, 0, len(m.projects.items))
		for _, p := range m.projects.items {
			if p.ProjectID != m.detail.note.ProjectID {
				targets = append(targets, p)
			}
		}
		m.move = moveModel{noteID: m.detail.note.NoteID, targets: targets}
		m.currentScreen = screenMove
		return m, nil
	case key.Matches(keyMsg, keys.share):
		return m, m.cmdShare(m.detail.note.NoteID)
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.note.Reference()
		m.pendingDelete = m.detail.note.NoteID
		m.pendingKind = deleteNote
		return m, nil
	}
	return m, nil
}

func (m appModel) updateFormNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = backFromNoteForm(m.formNote.editing)
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			if m.formNote.focus == 0 {
				m.formNote.focus = 1
				m.formNote.reference.Blur()
				return m, m.formNote.text.Focus()
			}
			m.formNote.focus = 0
			m.formNote.text.Blur()
			m.formNote.reference.Focus()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.formNote.submitting {
				return m, nil
			}
			if strings.TrimSpace(m.formNote.text.Value()) == "" {
				m.showErrorf("The note text is required")
				return m, nil
			}
			m.formNote.submitting = true
			return m, m.cmdSaveNote(m.formNote.toNote(), m.formNote.editing)
		}
	}

	var cmd tea.Cmd
	if m.formNote.focus == 0 {
		m.formNote.reference, cmd = m.formNote.reference.Update(msg)
	} else {
		m.formNote.text, cmd = m.formNote.text.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateFormProject(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenProjects
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formProject = focusNextFormProject(m.formProject)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formProject = focusPrevFormProject(m.formProject)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formProject.submitting {
				return m, nil
			}
			if strings.TrimSpace(m.formProject.inputs[0].Value()) == "" {
				m.showErrorf("The pass name is required")
				return m, nil
			}
			m.formProject.submitting = true
			return m, m.cmdSaveProject(m.formProject.toProject(), m.formProject.editing)
		}
	}

	var cmd tea.Cmd
	m.formProject.inputs[m.formProject.focus], cmd = m.formProject.inputs[m.formProject.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateMove(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.up):
		if m.move.idx > 0 {
			m.move.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.move.idx < len(m.move.targets)-1 {
			m.move.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		target, ok := m.move.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdMoveNote(m.move.noteID, target.ProjectID)
	}
	return m, nil
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, user)
		if err != nil {
			return savedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Register(ctx, user)
		if err != nil {
			return savedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdLoadProjects() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		projects, err := svc.ListProjects(ctx)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m appModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	projectID := m.notes.project.ProjectID
	return func() tea.Msg {
		all, err := svc.ListNotes(ctx)
		if err != nil {
			return notesLoadedMsg{err: err}
		}
		notes := service.FilterNotes(all, models.NoteListQuery{ProjectID: projectID})
		service.SortNotes(notes, models.SortByReference)
		return notesLoadedMsg{notes: notes}
	}
}

func (m appModel) cmdReloadCurrent() tea.Cmd {
	if m.currentScreen == screenNotes || m.currentScreen == screenDetail {
		return m.cmdLoadNotes()
	}
	return m.cmdLoadProjects()
}

func (m appModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService
	return func() tea.Msg {
		return syncDoneMsg{err: svc.FullSync(ctx)}
	}
}

func (m appModel) cmdSaveNote(note models.Note, editing bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		var err error
		if editing {
			_, err = svc.UpdateNote(ctx, note)
		} else {
			_, err = svc.CreateNote(ctx, note)
		}
		return savedMsg{err: err}
	}
}

func (m appModel) cmdSaveProject(project models.Project, editing bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProjectService
	return func() tea.Msg {
		var err error
		if editing {
			_, err = svc.UpdateProject(ctx, project)
		} else {
			_, err = svc.CreateProject(ctx, project)
		}
		return savedMsg{err: err}
	}
}

func (m appModel) cmdDeletePending() tea.Cmd {
	ctx := m.ctx
	id := m.pendingDelete
	kind := m.pendingKind
	notes := m.services.NoteService
	projects := m.services.ProjectService
	return func() tea.Msg {
		switch kind {
		case deleteNote:
			return deletedMsg{err: notes.DeleteNote(ctx, id)}
		case deleteProject:
			_, err := projects.DeleteProject(ctx, id)
			return deletedMsg{err: err}
		}
		return deletedMsg{}
	}
}

func (m appModel) cmdMoveNote(noteID, projectID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		_, err := svc.MoveNote(ctx, noteID, projectID)
		return savedMsg{err: err}
	}
}

func (m appModel) cmdLookupVerse(surah, verse int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		v, err := svc.LookupVerse(ctx, surah, verse)
		return verseLoadedMsg{verse: v, err: err}
	}
}

func (m appModel) cmdShare(noteID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		links, err := svc.ShareNote(ctx, noteID)
		if err != nil {
			return savedMsg{err: err}
		}
		if err = clipboard.WriteAll(links.CardURL); err != nil {
			return savedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ── helpers ──────────────────────────────────────────────────────────────────

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func backFromNoteForm(editing bool) screen {
	if editing {
		return screenDetail
	}
	return screenNotes
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextFormProject(m formProjectModel) formProjectModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevFormProject(m formProjectModel) formProjectModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
