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


// Package storage provides the storage abstraction layer for partdex.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic, allowing different backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// The PartRepository owns both the part records and their token index:
// every write applies its index side effect inside the same transaction,
// so search never observes a part without its postings or postings without
// their part.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines. Mutations are serialized
// against each other and against concurrent index reads by the backend's
// transaction discipline; reads do not block each other.
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
