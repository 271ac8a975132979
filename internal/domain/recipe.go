// Package domain defines the core types and interfaces for the recipe
// browser. All other packages depend on domain; domain depends on nothing.
package domain

import (
	"encoding/json"
	"strings"
)

// Recipe represents one dish record as served by the recipes endpoint.
// Image, Ingredients, and Instructions are optional on the wire; absent
// fields decode to their zero values and rendering treats them as empty.
type Recipe struct {
	ID           RecipeID   `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Description  string     `json:"description" yaml:"description"`
	Image        string     `json:"image,omitempty" yaml:"image,omitempty"`
	Ingredients  StringList `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Instructions StringList `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// TagLine returns up to the first three ingredients joined by ", ",
// or the empty string when the recipe has no ingredients.
func (r Recipe) TagLine() string {
	if len(r.Ingredients) == 0 {
		return ""
	}
	tags := r.Ingredients
	if len(tags) > 3 {
		tags = tags[:3]
	}
	return strings.Join(tags, ", ")
}

// RecipeID is an opaque recipe identifier. Backends disagree on whether
// ids are JSON strings or numbers, so both decode to their textual form.
type RecipeID string

// UnmarshalJSON accepts a JSON string or number.
func (id *RecipeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = RecipeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = RecipeID(n.String())
		return nil
	}
	// Anything else (null, object, array) decodes to the empty id rather
	// than failing the whole record.
	*id = ""
	return nil
}

// MarshalJSON emits the id as a JSON string.
func (id RecipeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// StringList is an ordered list of strings with tolerant decoding: a wire
// value that is not an array decodes to nil, and elements that are not
// strings are dropped. This replaces the render-time guards the original
// UI needed for malformed payloads.
type StringList []string

// UnmarshalJSON decodes a JSON array of strings, skipping non-string
// elements. Any non-array value decodes to nil.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}
	out := make(StringList, 0, len(raw))
	for _, el := range raw {
		var s string
		if err := json.Unmarshal(el, &s); err == nil {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		*l = nil
		return nil
	}
	*l = out
	return nil
}

// Filter narrows a fetch: Search matches against recipe names, Ingredient
// against individual ingredients. Empty fields are omitted from the query.
type Filter struct {
	Search     string
	Ingredient string
}

// Empty reports whether no filter field is set.
func (f Filter) Empty() bool {
	return f.Search == "" && f.Ingredient == ""
}
