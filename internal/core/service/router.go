package service

import "schedbot/internal/core/domain"

// ResolveEndpoint maps a duration bucket to its delay-service endpoint.
// Bucket k selects the k-th table entry, 1-indexed; anything outside
// [1, len(table)] is out of range.
func ResolveEndpoint(durationUnits int, table []string) (string, error) {
	if durationUnits < 1 || durationUnits > len(table) {
		return "", domain.ErrOutOfRange
	}

	return table[durationUnits-1], nil
}
