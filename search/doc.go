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


// Package search provides hybrid token and fuzzy search over the part catalog.
//
// The Searcher type implements a two-stage search algorithm:
//   - Token search using the prefix-matched postings index
//   - Fuzzy supplement using edit-distance similarity, engaged only when
//     the token stage returns too few results
//
// Token results keep their index rank; fuzzy-only results are appended
// after them ordered by similarity, so improving spelling never demotes
// an exact match.
package search
