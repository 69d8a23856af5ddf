//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"emotion-lab/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Classifier is a remote emotion model. It may fail or hang at any time:
// callers bound it with a deadline and fall back to local scoring.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.RemoteResult, error)
	Name() string
}

// IAnalyzer scores one message.
type IAnalyzer interface {
	Analyze(text string, remote *domain.RemoteResult) domain.AnalysisResult
	AnalyzeContext(ctx context.Context, text string) domain.AnalysisResult
}

// Censor masks forbidden words and returns the masked copy with the words found.
type Censor interface {
	Censor(original string) (string, []string)
}
