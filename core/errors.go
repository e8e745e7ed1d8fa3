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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPart indicates a Part failed validation.
	ErrInvalidPart = errors.New("invalid part")

	// ErrEmptyPartName indicates the part Name field is empty.
	ErrEmptyPartName = errors.New("part name cannot be empty")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrInvalidIntent indicates an invalid Intent value.
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrInvalidConfidence indicates a confidence outside [0.0, 1.0].
	ErrInvalidConfidence = errors.New("confidence must be between 0.0 and 1.0")
)
