package domain

import "context"

// RecipeSource provides recipes matching a filter. Implementations can be
// API-backed or in-memory (the built-in demo catalog).
type RecipeSource interface {
	Fetch(ctx context.Context, f Filter) ([]Recipe, error)
}
