package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeCursor creates a base64 encoded token from an item's date and id.
func EncodeCursor(date, id string) string {
	return base64.URLEncoding.EncodeToString([]byte(date + "|" + id))
}

// DecodeCursor parses a token produced by EncodeCursor.
// The date never contains the separator, so everything after the first one is the id.
func DecodeCursor(token string) (string, string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", fmt.Errorf("invalid pagination token format (split)")
	}
	return parts[0], parts[1], nil
}

// PageAfter returns up to limit items following the item named by token, plus the token for the
// next page ("" when exhausted). An empty token starts at the beginning; limit <= 0 returns the rest.
// items must already be in their final order.
func PageAfter[T any](items []T, limit int, token string, cursor func(T) (string, string)) ([]T, string, error) {
	start := 0
	if token != "" {
		date, id, err := DecodeCursor(token)
		if err != nil {
			return nil, "", err
		}
		start = -1
		for i, item := range items {
			d, itemID := cursor(item)
			if itemID == id && d == date {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, "", fmt.Errorf("pagination token does not match any item")
		}
	}

	end := len(items)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	page := items[start:end]

	next := ""
	if end < len(items) && len(page) > 0 {
		next = EncodeCursor(cursor(page[len(page)-1]))
	}
	return page, next, nil
}
