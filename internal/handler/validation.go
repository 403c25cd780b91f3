package handler

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	tagNameRe  = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)
	hexColorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
)

// Length bounds count characters, not bytes.
func validateTagName(name string) []string {
	var violations []string
	if strings.TrimSpace(name) == "" {
		return []string{"Tag name is required"}
	}
	if utf8.RuneCountInString(name) < 2 {
		violations = append(violations, "Tag name must be at least 2 characters long")
	}
	if utf8.RuneCountInString(name) > 50 {
		violations = append(violations, "Tag name must not exceed 50 characters")
	}
	if !tagNameRe.MatchString(name) {
		violations = append(violations, "Tag name can only contain letters, numbers, spaces, hyphens, and underscores")
	}
	return violations
}

func validateTagDescription(description string) []string {
	if utf8.RuneCountInString(description) > 200 {
		return []string{"Description must not exceed 200 characters"}
	}
	return nil
}

func validateTagColor(color string) []string {
	if color != "" && !hexColorRe.MatchString(color) {
		return []string{"Color must be a valid hex color (e.g. #FF0000 or #F00)"}
	}
	return nil
}

func validateCallTitle(title string) []string {
	var violations []string
	if strings.TrimSpace(title) == "" {
		return []string{"Call title is required"}
	}
	if utf8.RuneCountInString(title) < 3 {
		violations = append(violations, "Call title must be at least 3 characters long")
	}
	if utf8.RuneCountInString(title) > 200 {
		violations = append(violations, "Call title must not exceed 200 characters")
	}
	return violations
}

func validateTaskTitle(title string) []string {
	if strings.TrimSpace(title) == "" {
		return []string{"Task title is required"}
	}
	return nil
}

// dedupeIDs preserves first-seen order while dropping repeats.
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
