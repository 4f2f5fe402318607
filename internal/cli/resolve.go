package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveEntryID resolves a full entry UUID or a unique UUID prefix.
func resolveEntryID(ctx context.Context, app *App, input string) (string, error) {
	entries, err := app.Entries.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return resolveByPrefix("entry", input, ids)
}

// resolveGoalID resolves a full goal UUID or a unique UUID prefix.
func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	goals, err := app.Goals.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return resolveByPrefix("goal", input, ids)
}

func resolveByPrefix(kind, input string, ids []string) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
