// Package coach turns raw model completions into chat replies with optional
// structured workout or meal plan payloads.
package coach

import (
	"bytes"
	"encoding/json"
)

// Reply is the interpreted form of one completion.
type Reply struct {
	Message string
	Data    json.RawMessage
}

// Interpret parses a completion that should be a JSON object of shape
// {"message": ..., "data": ...}. Anything that fails to parse is treated as
// a plain-text reply: the whole completion becomes the message and there is
// no payload.
func Interpret(raw string) Reply {
	var parsed struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Reply{Message: raw}
	}
	data := parsed.Data
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		data = nil
	}
	return Reply{Message: parsed.Message, Data: data}
}

// PayloadKind classifies a reply's structured payload.
type PayloadKind int

const (
	PayloadNone PayloadKind = iota
	PayloadWorkout
	PayloadMealPlan
)

// Classify probes the payload for its discriminating field: "exercises"
// marks a workout, "meals" a meal plan, checked in that order. A payload
// with neither field, or one that is not a JSON object at all, is silently
// treated as having no actionable data.
func Classify(data json.RawMessage) PayloadKind {
	if len(data) == 0 {
		return PayloadNone
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return PayloadNone
	}
	if _, ok := probe["exercises"]; ok {
		return PayloadWorkout
	}
	if _, ok := probe["meals"]; ok {
		return PayloadMealPlan
	}
	return PayloadNone
}
