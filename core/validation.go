// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// ValidatePart validates a Part according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - InsertedAt must not be in the future (zero is valid before first write)
//
// NOT validated (populated by the repository):
//   - ID (0 is valid; a content-based ID is assigned on insert)
//   - UpdatedAt (maintained on every write)
func ValidatePart(part *Part) error {
	if part == nil {
		return fmt.Errorf("%w: part is nil", ErrInvalidPart)
	}

	if part.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPart, ErrEmptyPartName)
	}

	if !part.InsertedAt.IsZero() && !IsValidTimestamp(part.InsertedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidPart, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateIntent validates that an Intent has a valid value.
func ValidateIntent(intent Intent) error {
	if intent < IntentTypeSearch || intent > IntentPriceFilter {
		return fmt.Errorf("%w: value %d", ErrInvalidIntent, intent)
	}
	return nil
}

// ValidateParsedQuery validates a ParsedQuery according to domain rules.
//
// Validation rules:
//   - Intent must be a known category
//   - Confidence must be in [0.0, 1.0]
func ValidateParsedQuery(parsed *ParsedQuery) error {
	if parsed == nil {
		return fmt.Errorf("%w: parsed query is nil", ErrInvalidIntent)
	}

	if err := ValidateIntent(parsed.Intent); err != nil {
		return err
	}

	if parsed.Confidence < 0.0 || parsed.Confidence > 1.0 {
		return fmt.Errorf("%w: value %v", ErrInvalidConfidence, parsed.Confidence)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
