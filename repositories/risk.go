//go:generate go run go.uber.org/mock/mockgen -source=risk.go -destination=../mocks/mock_risk_repository.go -package=mocks
package repositories

import (
	"emotion-lab/codec"
	"emotion-lab/domain"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const riskPrefix = "risk:"

type IRiskRepository interface {
	Record(chatID int64, userID string, alerts []domain.Alert, at time.Time) (domain.UserRiskProfile, error)
	Get(chatID int64, userID string) (domain.UserRiskProfile, error)
	TopByChat(chatID int64, n int) ([]domain.UserRiskProfile, error)
}

type RiskRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRiskRepository(db *badger.DB, log *slog.Logger) *RiskRepository {
	return &RiskRepository{db: db, log: log}
}

type riskRecord struct {
	ChatID         int64                    `json:"chat_id,string"`
	UserID         string                   `json:"user_id"`
	Incidents      map[domain.AlertType]int `json:"incidents"`
	LastIncidentAt time.Time                `json:"last_incident_at"`
}

// Record adds the alerts raised by one message to the author's profile.
// Messages without alerts leave the store untouched.
func (r *RiskRepository) Record(chatID int64, userID string, alerts []domain.Alert, at time.Time) (domain.UserRiskProfile, error) {
	if len(alerts) == 0 {
		return r.Get(chatID, userID)
	}
	var updated domain.UserRiskProfile
	err := retryOnConflict(r.log, func() error {
		return r.db.Update(func(txn *badger.Txn) error {
			current, err := getRisk(txn, chatID, userID)
			if err != nil {
				return err
			}
			updated = current.Record(alerts, at)
			data, err := codec.Marshal(riskRecord(updated))
			if err != nil {
				return err
			}
			return txn.Set(riskKey(chatID, userID), data)
		})
	})
	return updated, err
}

func (r *RiskRepository) Get(chatID int64, userID string) (domain.UserRiskProfile, error) {
	var profile domain.UserRiskProfile
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		profile, err = getRisk(txn, chatID, userID)
		return err
	})
	return profile, err
}

// TopByChat returns the n authors of a chat with the most incidents.
func (r *RiskRepository) TopByChat(chatID int64, n int) ([]domain.UserRiskProfile, error) {
	var profiles []domain.UserRiskProfile
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(fmt.Sprintf("%s%d:", riskPrefix, chatID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				profile, err := decodeRisk(val)
				if err != nil {
					return err
				}
				profiles = append(profiles, profile)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Total() > profiles[j].Total()
	})
	if n > 0 && len(profiles) > n {
		profiles = profiles[:n]
	}
	return profiles, nil
}

func getRisk(txn *badger.Txn, chatID int64, userID string) (domain.UserRiskProfile, error) {
	item, err := txn.Get(riskKey(chatID, userID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.NewUserRiskProfile(chatID, userID), nil
	}
	if err != nil {
		return domain.UserRiskProfile{}, err
	}
	var profile domain.UserRiskProfile
	err = item.Value(func(val []byte) error {
		profile, err = decodeRisk(val)
		return err
	})
	return profile, err
}

func decodeRisk(val []byte) (domain.UserRiskProfile, error) {
	var record riskRecord
	if err := codec.Unmarshal(val, &record); err != nil {
		return domain.UserRiskProfile{}, fmt.Errorf("failed to decode risk profile: %w", err)
	}
	profile := domain.UserRiskProfile(record)
	if profile.Incidents == nil {
		profile.Incidents = make(map[domain.AlertType]int)
	}
	return profile, nil
}

func riskKey(chatID int64, userID string) []byte {
	return []byte(fmt.Sprintf("%s%d:%s", riskPrefix, chatID, userID))
}
