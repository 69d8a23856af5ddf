package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrInvalidRequest    = fmt.Errorf("invalid analyze request")
	ErrInvalidMode       = fmt.Errorf("invalid analysis mode")
	ErrEmptyLexicon      = fmt.Errorf("lexicon has no entries")
	ErrRemoteUnavailable = fmt.Errorf("remote classifier unavailable")
	ErrRemoteStatus      = fmt.Errorf("remote classifier returned a non-2xx status")
	ErrRemoteMalformed   = fmt.Errorf("remote classifier returned a malformed body")
	ErrAnalysisNotFound  = fmt.Errorf("analysis not found")
	ErrDuplicateAnalysis = fmt.Errorf("message already analyzed")
	ErrQueueFull         = fmt.Errorf("analysis queue is full")
	ErrInvalidPayload    = fmt.Errorf("invalid event payload")
)
