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


package query

import "errors"

var (
	// ErrThresholdOutOfRange is returned when a confidence threshold outside
	// [0.0, 1.0] is supplied. The previous threshold stays in effect.
	ErrThresholdOutOfRange = errors.New("confidence threshold must be between 0.0 and 1.0")

	// ErrConfigRequired is returned when a Parser is constructed without a config.
	ErrConfigRequired = errors.New("config required")
)
