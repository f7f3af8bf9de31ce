package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectIndexArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"todo"},
			want: []string{"todo"},
		},
		{
			name: "direct index first token",
			in:   []string{"todo", "2"},
			want: []string{"todo", "get", "2"},
		},
		{
			name: "direct index after value flag",
			in:   []string{"todo", "--seed", "Buy milk", "0"},
			want: []string{"todo", "--seed", "Buy milk", "get", "0"},
		},
		{
			name: "numeric flag value is not an index",
			in:   []string{"todo", "--seed", "7"},
			want: []string{"todo", "--seed", "7"},
		},
		{
			name: "direct index after equals flag",
			in:   []string{"todo", "--format=edn", "1"},
			want: []string{"todo", "--format=edn", "get", "1"},
		},
		{
			name: "direct index after bool flag",
			in:   []string{"todo", "--demo", "3"},
			want: []string{"todo", "--demo", "get", "3"},
		},
		{
			name: "direct index after double dash",
			in:   []string{"todo", "--demo", "--", "1"},
			want: []string{"todo", "--demo", "get", "--", "1"},
		},
		{
			name: "negative index after double dash",
			in:   []string{"todo", "--", "-1"},
			want: []string{"todo", "get", "--", "-1"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"todo", "get", "1"},
			want: []string{"todo", "get", "1"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"todo", "wat"},
			want: []string{"todo", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectIndexArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v; got %v", tt.want, got)
			}
		})
	}
}
