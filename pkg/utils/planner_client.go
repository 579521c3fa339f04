package utils

import (
	"context"
	"strings"
)

// PlannerClientInterface abstracts the model provider behind itinerary
// generation. Implementations must return the raw text of the model's
// reply; prompt construction and JSON parsing belong to the caller.
type PlannerClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}

// CleanJSONResponse strips markdown fences and chatty prefixes from a
// model reply and slices out the first complete JSON object or array.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	prefixes := []string{
		"Here's the itinerary:",
		"Here is the itinerary:",
		"Here's your travel plan:",
		"The itinerary is:",
		"Itinerary:",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.TrimSpace(response), prefix) {
			response = strings.TrimPrefix(strings.TrimSpace(response), prefix)
			break
		}
	}

	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatchingBrace(response, objStart); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatchingBracket(response, arrStart); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatchingBrace finds the matching closing brace for an opening brace
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// findMatchingBracket finds the matching closing bracket for an opening bracket
func findMatchingBracket(s string, start int) int {
	if start >= len(s) || s[start] != '[' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
