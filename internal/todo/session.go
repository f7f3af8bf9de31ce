package todo

import "todo-cli/internal/model"

// Screen is what the presentation layer should show for a session.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenList
	ScreenListWithForm
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenList:
		return "list"
	case ScreenListWithForm:
		return "list+form"
	default:
		return "unknown"
	}
}

// Session wires the state containers one app instance needs.
//
// Welcome is the introductory "Continue" screen. Compose is the second gate:
// the list is shown alone until the user asks to add an entry, after which
// the form stays visible below it.
type Session struct {
	Welcome OnboardingGate
	Compose OnboardingGate
	Tasks   *TaskListStore
	Entry   SubmissionController
}

func NewSession(labels ...string) (*Session, error) {
	st, err := NewTaskListStore(labels...)
	if err != nil {
		return nil, err
	}
	return &Session{Tasks: st}, nil
}

func (s *Session) Screen() Screen {
	switch {
	case !s.Welcome.IsDismissed():
		return ScreenWelcome
	case !s.Compose.IsDismissed():
		return ScreenList
	default:
		return ScreenListWithForm
	}
}

// Submit submits the pending entry against the session's store.
func (s *Session) Submit() (model.IndexedTask, error) {
	t, err := s.Entry.Submit(s.Tasks)
	if err != nil {
		return model.IndexedTask{}, err
	}
	return model.WithIndex(s.Tasks.Len()-1, t), nil
}
