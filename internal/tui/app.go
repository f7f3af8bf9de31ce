package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"todo-cli/internal/docs"
	"todo-cli/internal/todo"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// changeFeed collects session events raised while handling a message. Update
// drains it once the message has been handled.
type changeFeed struct {
	events []todo.Event
}

func (f *changeFeed) Changed(ev todo.Event) { f.events = append(f.events, ev) }

func (f *changeFeed) drain() []todo.Event {
	evs := f.events
	f.events = nil
	return evs
}

type appModel struct {
	sess *todo.Session
	feed *changeFeed
	rows *rowState
	keys keyMap
	help help.Model
	list list.Model
	form formModel

	width  int
	height int

	status    string
	statusErr bool
	showDocs  bool
}

func newAppModel(sess *todo.Session) appModel {
	feed := &changeFeed{}
	sess.Welcome.Subscribe(feed)
	sess.Compose.Subscribe(feed)
	sess.Tasks.Subscribe(feed)

	rows := newRowState()
	m := appModel{
		sess: sess,
		feed: feed,
		rows: rows,
		keys: defaultKeyMap(),
		help: help.New(),
		list: newTaskList(taskItems(sess.Tasks.List()), rows),
		form: newFormModel(),
	}
	if sess.Screen() == todo.ScreenListWithForm {
		m.form.focusMessage()
	}
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.showDocs {
			// Any key closes the keys overlay.
			m.showDocs = false
			return m, nil
		}
		if key.Matches(msg, m.keys.Docs) && !m.form.focused() {
			m.showDocs = true
			return m, nil
		}
		switch m.sess.Screen() {
		case todo.ScreenWelcome:
			cmd = m.updateWelcome(msg)
		default:
			if m.form.focused() {
				cmd = m.updateForm(msg)
			} else {
				cmd = m.updateList(msg)
			}
		}
	default:
		if m.form.focused() {
			m.form.input, cmd = m.form.input.Update(msg)
		}
	}

	m.applyEvents()
	return m, cmd
}

func (m *appModel) updateWelcome(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Continue):
		m.sess.Welcome.Dismiss()
	}
	return nil
}

func (m *appModel) updateList(msg tea.KeyMsg) tea.Cmd {
	composing := m.sess.Screen() == todo.ScreenListWithForm
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case !composing && key.Matches(msg, m.keys.Compose):
		m.sess.Compose.Dismiss()
		return nil
	case composing && key.Matches(msg, m.keys.FocusForm):
		m.form.focusMessage()
		m.setStatus("", false)
		return nil
	case key.Matches(msg, m.keys.Expand):
		if it, ok := m.list.SelectedItem().(taskItem); ok {
			m.rows.toggle(it.index)
		}
		return nil
	case key.Matches(msg, m.keys.Show):
		m.showSelected()
		return nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *appModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return nil
	case key.Matches(msg, m.keys.Back):
		m.form.blur()
		return nil
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		if m.form.field == fieldMessage {
			m.form.focusSubmit()
		} else {
			m.form.focusMessage()
		}
		return nil
	}

	if m.form.field == fieldSubmit {
		if msg.Type == tea.KeyEnter {
			m.submit()
		}
		return nil
	}

	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	m.sess.Entry.SetPendingEntry(m.form.input.Value())
	return cmd
}

func (m *appModel) submit() {
	res, err := m.sess.Submit()
	if err != nil {
		if errors.Is(err, todo.ErrEmpty) {
			m.setStatus("Message is empty", true)
		} else {
			m.setStatus(err.Error(), true)
		}
		log.Printf("submit: %v", err)
		return
	}
	m.form.input.Reset()
	m.form.focusMessage()
	m.setStatus(fmt.Sprintf("Added item %d: %s", res.Index, res.Label), false)
	log.Printf("submit: appended %q at %d", res.Label, res.Index)
}

func (m *appModel) showSelected() {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return
	}
	t, err := m.sess.Tasks.Get(it.index)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("Item %d: %s", it.index, t.Label), false)
}

// applyEvents reflects session changes raised during this update.
func (m *appModel) applyEvents() {
	relayout := false
	for _, ev := range m.feed.drain() {
		switch ev.Kind {
		case todo.EventTaskAppended:
			m.list.InsertItem(ev.Index, taskItem{index: ev.Index, task: ev.Task})
			m.list.Select(ev.Index)
		case todo.EventOnboardingDismissed:
			relayout = true
			if m.sess.Screen() == todo.ScreenListWithForm {
				m.form.focusMessage()
			}
		}
	}
	if relayout {
		m.resize()
	}
}

func (m *appModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *appModel) resize() {
	w := m.width
	if w < 20 {
		w = 20
	}
	h := m.height - 3 // title bar, status, help
	switch m.sess.Screen() {
	case todo.ScreenList:
		h -= 2
	case todo.ScreenListWithForm:
		h -= formHeight() + 1
	}
	if h < 4 {
		h = 4
	}
	m.list.SetSize(w, h)
	m.form.setWidth(w)
	m.help.Width = w
}

func (m appModel) View() string {
	if m.showDocs {
		return m.docsView()
	}
	screen := m.sess.Screen()
	if screen == todo.ScreenWelcome {
		return welcomeView(m.width, m.height)
	}

	w := m.width
	if w < 20 {
		w = 20
	}
	parts := []string{
		styleTitleBar(w).Render("TO-DO List"),
		m.list.View(),
	}
	switch screen {
	case todo.ScreenList:
		parts = append(parts, "", composeView(w))
	case todo.ScreenListWithForm:
		parts = append(parts, "", m.form.view(w))
	}
	parts = append(parts, m.statusView(), m.help.ShortHelpView(m.helpKeys()))
	return strings.Join(parts, "\n")
}

func (m appModel) docsView() string {
	body, _ := docs.Get("keys")
	w := m.width
	if w <= 0 || w > 80 {
		w = 80
	}
	return renderMarkdown(body, w) + "\n\n" + styleMuted().Render("press any key to close")
}

func (m appModel) statusView() string {
	if m.status == "" {
		return ""
	}
	st := lipgloss.NewStyle().Foreground(colorOK)
	if m.statusErr {
		st = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	}
	return st.Render(m.status)
}

func (m appModel) helpKeys() []key.Binding {
	switch {
	case m.sess.Screen() == todo.ScreenWelcome:
		return []key.Binding{m.keys.Continue, m.keys.Docs, m.keys.Quit}
	case m.form.focused():
		return []key.Binding{m.keys.Submit, m.keys.NextField, m.keys.Back, m.keys.ForceQuit}
	case m.sess.Screen() == todo.ScreenList:
		return []key.Binding{m.keys.Compose, m.keys.Expand, m.keys.Show, m.keys.Docs, m.keys.Quit}
	default:
		return []key.Binding{m.keys.FocusForm, m.keys.Expand, m.keys.Show, m.keys.Docs, m.keys.Quit}
	}
}
