package format

import (
	"bytes"
	"testing"

	"todo-cli/internal/model"
)

func TestWrite_JSONEnvelope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	env := Envelope{Data: []model.IndexedTask{{Index: 0, Label: "Buy milk"}}}
	if err := Write(&buf, env, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{"data":[{"index":0,"label":"Buy milk"}]}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("expected %q; got %q", want, got)
	}
}

func TestWrite_EDN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      any
		pretty bool
		want   string
	}{
		{
			name: "envelope with hints",
			v:    Envelope{Data: model.IndexedTask{Index: 1, Label: "Second"}, Hints: []string{"todo list"}},
			want: `{:hints ["todo list"] :data {:index 1 :label "Second"}}` + "\n",
		},
		{
			name: "camel case keys",
			v:    map[string]any{"pendingEntry": "", "ok": true, "n": 1.5, "x": nil},
			want: `{:n 1.5 :ok true :pending-entry "" :x nil}` + "\n",
		},
		{
			name:   "pretty vector",
			v:      []string{"a", "b"},
			pretty: true,
			want:   "[\n  \"a\"\n  \"b\"\n]\n",
		},
		{
			name:   "pretty empty",
			v:      map[string]any{"data": []any{}},
			pretty: true,
			want:   "{\n  :data []\n}\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := Write(&buf, tt.v, "edn", tt.pretty); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("expected %q; got %q", tt.want, got)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, 1, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if Valid("yaml") || !Valid("edn") || !Valid("") {
		t.Fatalf("unexpected Valid results")
	}
}
