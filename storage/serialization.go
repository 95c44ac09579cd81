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


package storage

import (
	"fmt"
	"time"

	"github.com/laborlink/matchcore/core"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Payload discriminators. Stable on disk: append new variants, never
// renumber existing ones.
const (
	payloadSituation int = iota + 1
	payloadOptions
	payloadSelected
	payloadClicked
)

func payloadTag(payload core.EventPayload) (int, error) {
	switch payload.(type) {
	case core.SituationSubmitted:
		return payloadSituation, nil
	case core.OptionsGenerated:
		return payloadOptions, nil
	case core.OptionSelected:
		return payloadSelected, nil
	case core.OptionClicked:
		return payloadClicked, nil
	}
	return 0, fmt.Errorf("%w: unknown payload %T", ErrSerializationFailed, payload)
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	value, _, err := varint.Uint64.Unmarshal(data)
	return core.ID(value), err
}

// MarshalSessionEvent serializes a SessionEvent to bytes.
func MarshalSessionEvent(event *core.SessionEvent) ([]byte, error) {
	tag, err := payloadTag(event.Payload)
	if err != nil {
		return nil, err
	}

	size := varint.Uint64.Size(uint64(event.Id)) +
		ord.String.Size(event.SessionId) +
		varint.Int.Size(event.Step) +
		ord.String.Size(string(event.Audience)) +
		varint.Int64.Size(event.CreatedAt.UnixMicro()) +
		varint.Int.Size(tag) +
		payloadSize(event.Payload)

	buf := make([]byte, size)
	n := varint.Uint64.Marshal(uint64(event.Id), buf)
	n += ord.String.Marshal(event.SessionId, buf[n:])
	n += varint.Int.Marshal(event.Step, buf[n:])
	n += ord.String.Marshal(string(event.Audience), buf[n:])
	n += varint.Int64.Marshal(event.CreatedAt.UnixMicro(), buf[n:])
	n += varint.Int.Marshal(tag, buf[n:])
	marshalPayload(event.Payload, buf[n:])
	return buf, nil
}

func payloadSize(payload core.EventPayload) int {
	switch p := payload.(type) {
	case core.SituationSubmitted:
		return ord.String.Size(p.Text)
	case core.OptionsGenerated:
		size := varint.Int.Size(len(p.Services))
		for _, service := range p.Services {
			size += ord.String.Size(service)
		}
		return size
	case core.OptionSelected:
		return ord.String.Size(p.Service)
	case core.OptionClicked:
		return ord.String.Size(p.Service)
	}
	return 0
}

func marshalPayload(payload core.EventPayload, buf []byte) int {
	switch p := payload.(type) {
	case core.SituationSubmitted:
		return ord.String.Marshal(p.Text, buf)
	case core.OptionsGenerated:
		n := varint.Int.Marshal(len(p.Services), buf)
		for _, service := range p.Services {
			n += ord.String.Marshal(service, buf[n:])
		}
		return n
	case core.OptionSelected:
		return ord.String.Marshal(p.Service, buf)
	case core.OptionClicked:
		return ord.String.Marshal(p.Service, buf)
	}
	return 0
}

// UnmarshalSessionEvent deserializes a SessionEvent from bytes.
func UnmarshalSessionEvent(data []byte) (*core.SessionEvent, error) {
	var event core.SessionEvent

	id, n, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	event.Id = core.ID(id)

	sessionId, read, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += read
	event.SessionId = sessionId

	step, read, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += read
	event.Step = step

	audience, read, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += read
	event.Audience = core.Audience(audience)

	createdAt, read, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += read
	event.CreatedAt = time.UnixMicro(createdAt).UTC()

	tag, read, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += read

	event.Payload, _, err = unmarshalPayload(tag, data[n:])
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func unmarshalPayload(tag int, data []byte) (core.EventPayload, int, error) {
	switch tag {
	case payloadSituation:
		text, n, err := ord.String.Unmarshal(data)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
		}
		return core.SituationSubmitted{Text: text}, n, nil

	case payloadOptions:
		count, n, err := varint.Int.Unmarshal(data)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
		}
		services := make([]string, 0, count)
		for i := 0; i < count; i++ {
			service, read, err := ord.String.Unmarshal(data[n:])
			if err != nil {
				return nil, 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
			}
			n += read
			services = append(services, service)
		}
		return core.OptionsGenerated{Services: services}, n, nil

	case payloadSelected:
		service, n, err := ord.String.Unmarshal(data)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
		}
		return core.OptionSelected{Service: service}, n, nil

	case payloadClicked:
		service, n, err := ord.String.Unmarshal(data)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
		}
		return core.OptionClicked{Service: service}, n, nil
	}
	return nil, 0, fmt.Errorf("%w: unknown payload tag %d", ErrSerializationFailed, tag)
}
