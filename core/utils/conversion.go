package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID converts a command-line or path argument into a positive row id.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id: %q", raw)
	}
	return uint(id), nil
}

// ParseQuantity converts an argument into a non-negative quantity.
func ParseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 0 {
		return 0, fmt.Errorf("invalid quantity: %q", raw)
	}
	return qty, nil
}
