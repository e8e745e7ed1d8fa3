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


// Package query turns free-text inventory queries into structured filters.
//
// The Parser type implements a multi-stage pipeline:
//   - Intent classification against static keyword/phrase tables
//   - Independent extraction of typed entities (component type, stock
//     status, location, unit values, package, manufacturer, price bounds)
//   - Confidence scoring with multi-entity boosts and ambiguity penalties
//
// When the scored confidence clears the configured threshold the extracted
// entities are mapped to backend filter parameters; otherwise the caller is
// told to fall back to raw-text search. Parsing never fails: malformed or
// adversarial input produces a low-confidence result, which is exactly the
// fallback signal.
package query
