// Package home serves the dashboard: the current subscription, the
// upcoming session, the training-progress overview and the
// notification feed, each derived from raw gym API records.
package home

import (
	"errors"

	"github.com/LeHPhuc/GymApp/internal/gymapi"
)

// Section statuses. Empty means the fetch worked and there is nothing
// to show, which is not an error.
const (
	SectionStatusReady = "ready"
	SectionStatusEmpty = "empty"
	SectionStatusError = "error"
)

// Section error kinds.
const (
	ErrKindUnauthenticated = "unauthenticated"
	ErrKindFetchFailed     = "fetch_failed"
)

type SectionError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Section is one independently-fetched dashboard part. Exactly one of
// Data and Error is set depending on Status; both are nil for empty.
type Section struct {
	Status string        `json:"status"`
	Data   any           `json:"data,omitempty"`
	Error  *SectionError `json:"error,omitempty"`
}

func readySection(data any) Section {
	return Section{Status: SectionStatusReady, Data: data}
}

func emptySection() Section {
	return Section{Status: SectionStatusEmpty}
}

// errorSection maps a fetch failure onto its section error, keeping
// the user-facing message per section while upstream auth failures
// get their own kind so the client can cut straight to login.
func errorSection(err error, message string) Section {
	kind := ErrKindFetchFailed
	if errors.Is(err, gymapi.ErrUnauthenticated) {
		kind = ErrKindUnauthenticated
		message = "Không tìm thấy token đăng nhập"
	}
	return Section{
		Status: SectionStatusError,
		Error:  &SectionError{Kind: kind, Message: message},
	}
}
