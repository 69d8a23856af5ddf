//go:generate go run go.uber.org/mock/mockgen -source=blacklist.go -destination=../mocks/mock_blacklist_repository.go -package=mocks
package repositories

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const blacklistPrefix = "blacklist:"

// IBlacklistRepository holds the operator words censored on top of the lexicon.
type IBlacklistRepository interface {
	Add(words ...string) error
	Remove(word string) error
	List() ([]string, error)
}

// BlacklistRepository stores one key per word and no value:
// "blacklist:{word}". A trailing '*' marks a stem.
type BlacklistRepository struct {
	db *badger.DB
}

func NewBlacklistRepository(db *badger.DB) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

func (r *BlacklistRepository) Add(words ...string) error {
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if err := wb.Set([]byte(blacklistPrefix+word), nil); err != nil {
			return err
		}
	}
	return wb.Flush()
}

func (r *BlacklistRepository) Remove(word string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(blacklistPrefix + strings.ToLower(strings.TrimSpace(word))))
	})
}

// List returns every word in key order.
func (r *BlacklistRepository) List() ([]string, error) {
	var words []string
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		// Words live in the keys
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(blacklistPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			words = append(words, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return words, err
}
