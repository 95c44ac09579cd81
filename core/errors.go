// Copyright 2026 Laborlink Labs
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
	// ErrInvalidExample indicates an Example failed validation.
	ErrInvalidExample = errors.New("invalid example")

	// ErrInvalidServiceEntry indicates a ServiceEntry failed validation.
	ErrInvalidServiceEntry = errors.New("invalid service entry")

	// ErrInvalidEvent indicates a SessionEvent failed validation.
	ErrInvalidEvent = errors.New("invalid session event")

	// ErrTextTooShort indicates the example text is below the minimum length.
	ErrTextTooShort = errors.New("text below minimum length")

	// ErrNoServices indicates the example lists no services.
	ErrNoServices = errors.New("services cannot be empty")

	// ErrInvalidAudience indicates an unknown audience value.
	ErrInvalidAudience = errors.New("invalid audience")

	// ErrInvalidCategory indicates an unknown category value.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidProvenance indicates an unknown provenance value.
	ErrInvalidProvenance = errors.New("invalid provenance")

	// ErrUntrustedCount indicates a learned example was observed fewer than twice.
	ErrUntrustedCount = errors.New("learned example needs at least 2 observations")

	// ErrMissingPayload indicates a session event has no payload variant.
	ErrMissingPayload = errors.New("event payload is missing")

	// ErrMissingArtifact indicates a required corpus or report file is absent.
	// This is a fatal configuration error, never a silently empty result.
	ErrMissingArtifact = errors.New("required artifact is missing")
)
