//go:generate go run go.uber.org/mock/mockgen -source=chat_stats.go -destination=../mocks/mock_chat_stats_repository.go -package=mocks
package repositories

import (
	"emotion-lab/codec"
	"emotion-lab/domain"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	statsPrefix     = "stats:"
	maxTxnAttempts  = 16
	conflictBackoff = 5 * time.Millisecond
)

type IChatStatsRepository interface {
	Apply(chatID int64, result domain.AnalysisResult, at time.Time) (domain.ChatStats, error)
	Get(chatID int64) (domain.ChatStats, error)
	List() ([]domain.ChatStats, error)
}

// ChatStatsRepository is the keyed chat-id -> aggregate store. Concurrent
// updates of one chat are serialized by Badger transactions and retried on conflict.
type ChatStatsRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewChatStatsRepository(db *badger.DB, log *slog.Logger) *ChatStatsRepository {
	return &ChatStatsRepository{db: db, log: log}
}

type chatStatsRecord struct {
	ChatID        int64                    `json:"chat_id,string"`
	Messages      int                      `json:"messages"`
	EmotionCounts map[domain.Emotion]int   `json:"emotion_counts"`
	Sums          domain.EmotionCategories `json:"sums"`
	LastMessageAt time.Time                `json:"last_message_at"`
}

// Apply folds one analysis into the chat aggregate and returns the new state.
func (r *ChatStatsRepository) Apply(chatID int64, result domain.AnalysisResult, at time.Time) (domain.ChatStats, error) {
	var updated domain.ChatStats
	err := retryOnConflict(r.log, func() error {
		return r.db.Update(func(txn *badger.Txn) error {
			current, err := getStats(txn, chatID)
			if err != nil {
				return err
			}
			updated = current.Add(result, at)
			data, err := codec.Marshal(chatStatsRecord(updated))
			if err != nil {
				return err
			}
			return txn.Set(statsKey(chatID), data)
		})
	})
	return updated, err
}

// Get returns the aggregate of a chat, empty when the chat was never seen.
func (r *ChatStatsRepository) Get(chatID int64) (domain.ChatStats, error) {
	var stats domain.ChatStats
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = getStats(txn, chatID)
		return err
	})
	return stats, err
}

// List returns every known chat aggregate ordered by key.
func (r *ChatStatsRepository) List() ([]domain.ChatStats, error) {
	var all []domain.ChatStats
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(statsPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				stats, err := decodeStats(val)
				if err != nil {
					return err
				}
				all = append(all, stats)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return all, err
}

func getStats(txn *badger.Txn, chatID int64) (domain.ChatStats, error) {
	item, err := txn.Get(statsKey(chatID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.NewChatStats(chatID), nil
	}
	if err != nil {
		return domain.ChatStats{}, err
	}
	var stats domain.ChatStats
	err = item.Value(func(val []byte) error {
		stats, err = decodeStats(val)
		return err
	})
	return stats, err
}

func decodeStats(val []byte) (domain.ChatStats, error) {
	var record chatStatsRecord
	if err := codec.Unmarshal(val, &record); err != nil {
		return domain.ChatStats{}, fmt.Errorf("failed to decode chat stats: %w", err)
	}
	stats := domain.ChatStats(record)
	if stats.EmotionCounts == nil {
		stats.EmotionCounts = make(map[domain.Emotion]int)
	}
	return stats, nil
}

func statsKey(chatID int64) []byte {
	return []byte(fmt.Sprintf("%s%d", statsPrefix, chatID))
}

// retryOnConflict reruns fn while Badger reports a transaction conflict.
func retryOnConflict(log *slog.Logger, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxTxnAttempts; attempt++ {
		if err = fn(); !stderrors.Is(err, badger.ErrConflict) {
			return err
		}
		log.Debug("Transaction conflict, retrying", "attempt", attempt)
		time.Sleep(time.Duration(attempt) * conflictBackoff)
	}
	return err
}
