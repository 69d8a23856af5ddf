//go:generate go run go.uber.org/mock/mockgen -source=analysis.go -destination=../mocks/mock_analysis_repository.go -package=mocks
package repositories

import (
	"context"
	"emotion-lab/codec"
	"emotion-lab/domain"
	"emotion-lab/errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	stderrors "errors"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/index"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	analysisPrefix = "analysis:"
	indexPrefix    = "idx:analysis:"
)

// AnalysisRecord is what gets persisted for every analyzed message.
type AnalysisRecord struct {
	ID            uuid.UUID             `json:"id"`
	MessageID     uuid.UUID             `json:"message_id"`
	ChatID        int64                 `json:"chat_id,string"`
	Author        string                `json:"author"`
	At            time.Time             `json:"at"`
	Sanitized     string                `json:"sanitized"`
	CensoredWords []string              `json:"censored_words"`
	Tier          domain.AlertTier      `json:"tier"`
	Alerts        []domain.Alert        `json:"alerts"`
	Result        domain.AnalysisResult `json:"result"`
}

type IAnalysisRepository interface {
	Store(record AnalysisRecord) error
	FetchByMessageID(chatID int64, messageID uuid.UUID) (AnalysisRecord, error)
	ScanByChat(chatID int64, cursor *string) ([]AnalysisRecord, *string, error)
	SearchPaginated(ctx context.Context, query string, chatID int64, offset int) ([]AnalysisRecord, uint64, error)
	SearchByToxicity(ctx context.Context, low, high float64, chatID int64) ([]AnalysisRecord, uint64, error)
	Flush() error
}

// AnalysisRepository keeps records in Badger and indexes their text and
// toxicity in Bluge. Index updates are batched until Flush or until the batch
// reaches flushEvery documents.
type AnalysisRepository struct {
	db            *badger.DB
	writer        *bluge.Writer
	log           *slog.Logger
	limitAnalyses *int
	pageSize      int
	flushEvery    int

	mu      sync.Mutex
	batch   *index.Batch
	pending int
}

func NewAnalysisRepository(db *badger.DB, writer *bluge.Writer, log *slog.Logger, limitAnalyses *int, pageSize int) *AnalysisRepository {
	return &AnalysisRepository{
		db:            db,
		writer:        writer,
		log:           log,
		limitAnalyses: limitAnalyses,
		pageSize:      pageSize,
		flushEvery:    100,
		batch:         index.NewBatch(),
	}
}

// Store persists a record in BadgerDB under "analysis:{chat}:{timestamp_padded}:{message}".
// The padded timestamp keeps chronological order and an "idx:analysis:{chat}:{message}"
// key points back to the record for direct retrieval.
// A message already stored for the chat is left untouched and ErrDuplicateAnalysis is returned.
func (r *AnalysisRepository) Store(record AnalysisRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	key := analysisKey(record)
	data, err := codec.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	idx := []byte(indexKey(record.ChatID, record.MessageID))
	err = r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(idx)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", errors.ErrDuplicateAnalysis, record.MessageID)
		case !stderrors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		if err := txn.Set([]byte(key), data); err != nil {
			return err
		}
		return txn.Set(idx, []byte(key))
	})
	if err != nil {
		return err
	}
	return r.index(record)
}

func (r *AnalysisRepository) index(record AnalysisRecord) error {
	doc := bluge.NewDocument(record.MessageID.String()).
		AddField(bluge.NewTextField("content", record.Result.OriginalText)).
		AddField(bluge.NewTextField("normalized", record.Result.NormalizedText)).
		AddField(bluge.NewKeywordField("chat_id", strconv.FormatInt(record.ChatID, 10)).StoreValue()).
		AddField(bluge.NewKeywordField("emotion", string(record.Result.DominantEmotion))).
		AddField(bluge.NewNumericField("toxicity", record.Result.Categories.Toxicity))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.batch.Update(doc.ID(), doc)
	r.pending++
	if r.pending < r.flushEvery {
		return nil
	}
	return r.flushLocked()
}

// Flush writes the pending index updates.
func (r *AnalysisRepository) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushLocked()
}

func (r *AnalysisRepository) flushLocked() error {
	if r.pending == 0 {
		return nil
	}
	if err := r.writer.Batch(r.batch); err != nil {
		return fmt.Errorf("failed to index analyses: %w", err)
	}
	r.log.Debug("Flushed search index", "documents", r.pending)
	r.batch.Reset()
	r.pending = 0
	return nil
}

// FetchByMessageID resolves the index key, then loads the record.
func (r *AnalysisRepository) FetchByMessageID(chatID int64, messageID uuid.UUID) (AnalysisRecord, error) {
	var record AnalysisRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = r.fetch(txn, chatID, messageID)
		return err
	})
	return record, err
}

func (r *AnalysisRepository) fetch(txn *badger.Txn, chatID int64, messageID uuid.UUID) (AnalysisRecord, error) {
	var record AnalysisRecord
	item, err := txn.Get([]byte(indexKey(chatID, messageID)))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return record, fmt.Errorf("%w: %s", errors.ErrAnalysisNotFound, messageID)
	}
	if err != nil {
		return record, err
	}
	primary, err := item.ValueCopy(nil)
	if err != nil {
		return record, err
	}
	item, err = txn.Get(primary)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return record, fmt.Errorf("%w: %s", errors.ErrAnalysisNotFound, messageID)
	}
	if err != nil {
		return record, err
	}
	err = item.Value(func(val []byte) error {
		return codec.Unmarshal(val, &record)
	})
	return record, err
}

// ScanByChat walks the records of a chat from the newest to the oldest.
// The returned cursor is nil once the last page has been read.
func (r *AnalysisRepository) ScanByChat(chatID int64, cursor *string) ([]AnalysisRecord, *string, error) {
	var records []AnalysisRecord
	var lastKey string
	hasMore := false

	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("%s%d:", analysisPrefix, chatID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Reverse iteration starts after the highest possible timestamp
			seekKey = append(prefix, []byte("9999999999999999999~")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[len(prefix):]) == *cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitAnalyses != nil && len(records) == *r.limitAnalyses {
				hasMore = true
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			err := item.Value(func(val []byte) error {
				var record AnalysisRecord
				if err := codec.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if !hasMore {
		return records, nil, nil
	}
	return records, &lastKey, nil
}

// SearchPaginated runs a full-text query over the original and the normalized
// text of one chat. An empty query matches every record of the chat.
func (r *AnalysisRepository) SearchPaginated(ctx context.Context, query string, chatID int64, offset int) ([]AnalysisRecord, uint64, error) {
	var text bluge.Query = bluge.NewMatchAllQuery()
	if query != "" {
		text = bluge.NewBooleanQuery().
			AddShould(bluge.NewMatchQuery(query).SetField("content")).
			AddShould(bluge.NewMatchQuery(query).SetField("normalized")).
			SetMinShould(1)
	}
	q := bluge.NewBooleanQuery().
		AddMust(text).
		AddMust(bluge.NewTermQuery(strconv.FormatInt(chatID, 10)).SetField("chat_id"))
	return r.search(ctx, q, chatID, offset)
}

// SearchByToxicity returns the records of a chat whose toxicity lies in [low, high].
func (r *AnalysisRepository) SearchByToxicity(ctx context.Context, low, high float64, chatID int64) ([]AnalysisRecord, uint64, error) {
	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewNumericRangeInclusiveQuery(low, high, true, true).SetField("toxicity")).
		AddMust(bluge.NewTermQuery(strconv.FormatInt(chatID, 10)).SetField("chat_id"))
	return r.search(ctx, q, chatID, 0)
}

func (r *AnalysisRepository) search(ctx context.Context, q bluge.Query, chatID int64, offset int) ([]AnalysisRecord, uint64, error) {
	reader, err := r.writer.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	request := bluge.NewTopNSearch(r.pageSize, q).SetFrom(offset).WithStandardAggregations()
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	var ids []uuid.UUID
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if id, parseErr := uuid.Parse(string(value)); parseErr == nil {
					ids = append(ids, id)
				}
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, 0, err
	}
	total := matches.Aggregations().Count()

	var records []AnalysisRecord
	err = r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			record, err := r.fetch(txn, chatID, id)
			if stderrors.Is(err, errors.ErrAnalysisNotFound) {
				r.log.Warn("Indexed analysis missing from store", "message_id", id)
				continue
			}
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func analysisKey(record AnalysisRecord) string {
	return fmt.Sprintf("%s%d:%019d:%s", analysisPrefix, record.ChatID, record.At.UnixNano(), record.MessageID)
}

func indexKey(chatID int64, messageID uuid.UUID) string {
	return fmt.Sprintf("%s%d:%s", indexPrefix, chatID, messageID)
}
