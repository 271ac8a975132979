package domain

import (
	"encoding/json"
	"testing"
)

func TestTagLine(t *testing.T) {
	tests := []struct {
		name        string
		ingredients StringList
		want        string
	}{
		{"no ingredients", nil, ""},
		{"one", StringList{"pasta"}, "pasta"},
		{"exactly three", StringList{"pasta", "tomato", "basil"}, "pasta, tomato, basil"},
		{"more than three", StringList{"pasta", "tomato", "basil", "garlic"}, "pasta, tomato, basil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Recipe{Name: "x", Ingredients: tt.ingredients}
			if got := r.TagLine(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRecipeIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RecipeID
	}{
		{"string id", `"pasta-1"`, "pasta-1"},
		{"numeric id", `1`, "1"},
		{"large numeric id", `9007199254`, "9007199254"},
		{"null id", `null`, ""},
		{"object id", `{"x":1}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id RecipeID
			if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, id)
			}
		})
	}
}

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"array of strings", `["a","b"]`, []string{"a", "b"}},
		{"not an array", `"oops"`, nil},
		{"number", `7`, nil},
		{"object", `{"a":1}`, nil},
		{"mixed elements keep strings", `["a",1,"b",null]`, []string{"a", "b"}},
		{"empty array", `[]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			if err := json.Unmarshal([]byte(tt.in), &l); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(l) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, l)
			}
			for i := range l {
				if l[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, l)
				}
			}
		})
	}
}

func TestRecipeDecodeMissingFields(t *testing.T) {
	var r Recipe
	if err := json.Unmarshal([]byte(`{"id":1,"name":"Pasta","description":".."}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != "1" || r.Name != "Pasta" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.Ingredients != nil || r.Instructions != nil || r.Image != "" {
		t.Fatalf("optional fields should stay zero: %+v", r)
	}
	if r.TagLine() != "" {
		t.Fatalf("expected empty tag line, got %q", r.TagLine())
	}
}

func TestFilterEmpty(t *testing.T) {
	if !(Filter{}).Empty() {
		t.Fatal("zero filter should be empty")
	}
	if (Filter{Search: "soup"}).Empty() {
		t.Fatal("filter with search is not empty")
	}
	if (Filter{Ingredient: "basil"}).Empty() {
		t.Fatal("filter with ingredient is not empty")
	}
}
