package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	want := []string{"cli", "config", "keys"}
	if got := Topics(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	body, ok := Get(" KEYS ")
	if !ok || !strings.HasPrefix(body, "# Keys") {
		t.Fatalf("expected keys topic; got ok=%v body=%q", ok, body)
	}
	for _, topic := range []string{"", "nope", "../docs", "content/keys"} {
		if _, ok := Get(topic); ok {
			t.Fatalf("expected %q to be rejected", topic)
		}
	}
}
