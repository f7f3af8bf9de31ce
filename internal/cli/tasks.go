package cli

import (
	"errors"
	"strconv"
	"strings"

	"todo-cli/internal/format"
	"todo-cli/internal/model"
	"todo-cli/internal/todo"

	"github.com/spf13/cobra"
)

const hintInMemory = "nothing is saved: tasks only live for this invocation (seed with --seed/--demo)"

func indexed(ts []model.Task) []model.IndexedTask {
	out := make([]model.IndexedTask, 0, len(ts))
	for i, t := range ts {
		out = append(out, model.WithIndex(i, t))
	}
	return out
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks in order",
		Args:  withErr(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, format.Envelope{Data: indexed(sess.Tasks.List())})
		},
	}
}

type addResult struct {
	Added []model.IndexedTask `json:"added"`
	Tasks []model.IndexedTask `json:"tasks"`
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <label>...",
		Short: "Submit one or more entries and print the resulting list",
		Long: strings.TrimSpace(`
Each label goes through the same path as the entry form: it becomes the
pending entry and is then submitted. An empty label fails the command and
nothing after it is added.
`),
		Args: withErr(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			res := addResult{Added: []model.IndexedTask{}}
			for i, label := range args {
				sess.Entry.SetPendingEntry(label)
				t, err := sess.Submit()
				if errors.Is(err, todo.ErrEmpty) {
					return writeErr(cmd, emptyLabelError{position: i + 1})
				}
				if err != nil {
					return writeErr(cmd, err)
				}
				res.Added = append(res.Added, t)
			}
			res.Tasks = indexed(sess.Tasks.List())
			return writeOut(cmd, app, format.Envelope{Data: res, Hints: []string{hintInMemory}})
		},
	}
}

func newGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <index>",
		Short: "Show the task at a zero-based index",
		Args:  withErr(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return writeErr(cmd, indexArgError{arg: args[0]})
			}
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := sess.Tasks.Get(idx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, format.Envelope{Data: model.WithIndex(idx, t)})
		},
	}
}
