package grpc

import (
	"emotion-lab/domain"
	"emotion-lab/projection"
	"emotion-lab/repositories"
	"time"

	"github.com/google/uuid"
)

type AnalyzeRequest struct {
	Text string `json:"text" validate:"max=4096"`
}

type AnalyzeResponse struct {
	Result             domain.AnalysisResult `json:"result"`
	Tier               domain.AlertTier      `json:"tier"`
	Alerts             []AlertView           `json:"alerts"`
	Language           string                `json:"language"`
	LanguageConfidence float64               `json:"language_confidence"`
}

type AlertView struct {
	Type  domain.AlertType `json:"type"`
	Tier  domain.AlertTier `json:"tier"`
	Score float64          `json:"score"`
}

type SubmitRequest struct {
	MessageID string    `json:"message_id" validate:"omitempty,uuid"`
	ChatID    int64     `json:"chat_id,string" validate:"required"`
	Author    string    `json:"author" validate:"required,max=128"`
	Content   string    `json:"content" validate:"max=4096"`
	At        time.Time `json:"at"`
}

type SubmitResponse struct {
	MessageID string `json:"message_id"`
}

type StatsRequest struct {
	ChatID  int64 `json:"chat_id,string" validate:"required"`
	TopRisk int   `json:"top_risk" validate:"gte=0,lte=100"`
}

type StatsResponse struct {
	ChatID        int64                    `json:"chat_id,string"`
	Messages      int                      `json:"messages"`
	EmotionCounts map[domain.Emotion]int   `json:"emotion_counts"`
	Averages      domain.EmotionCategories `json:"averages"`
	LastMessageAt time.Time                `json:"last_message_at"`
	Mood          projection.Mood          `json:"mood"`
	TopRisks      []RiskView               `json:"top_risks"`
}

type RiskView struct {
	UserID         string                   `json:"user_id"`
	Incidents      map[domain.AlertType]int `json:"incidents"`
	Total          int                      `json:"total"`
	LastIncidentAt time.Time                `json:"last_incident_at"`
}

// SearchRequest runs a full-text search, or a toxicity range search when
// MaxToxicity is positive.
type SearchRequest struct {
	ChatID      int64   `json:"chat_id,string" validate:"required"`
	Query       string  `json:"query" validate:"max=256"`
	Offset      int     `json:"offset" validate:"gte=0"`
	MinToxicity float64 `json:"min_toxicity" validate:"gte=0,lte=100"`
	MaxToxicity float64 `json:"max_toxicity" validate:"gte=0,lte=100"`
}

type SearchResponse struct {
	Total   uint64       `json:"total"`
	Results []RecordView `json:"results"`
}

type RecordView struct {
	MessageID uuid.UUID        `json:"message_id"`
	Author    string           `json:"author"`
	At        time.Time        `json:"at"`
	Sanitized string           `json:"sanitized"`
	Emotion   domain.Emotion   `json:"emotion"`
	Severity  domain.Severity  `json:"severity"`
	Toxicity  float64          `json:"toxicity"`
	Tier      domain.AlertTier `json:"tier"`
}

func toAlertViews(alerts []domain.Alert) []AlertView {
	views := make([]AlertView, 0, len(alerts))
	for _, a := range alerts {
		views = append(views, AlertView{Type: a.Type, Tier: a.Tier, Score: a.Score})
	}
	return views
}

func toRecordView(r repositories.AnalysisRecord) RecordView {
	return RecordView{
		MessageID: r.MessageID,
		Author:    r.Author,
		At:        r.At,
		Sanitized: r.Sanitized,
		Emotion:   r.Result.DominantEmotion,
		Severity:  r.Result.Severity,
		Toxicity:  r.Result.Categories.Toxicity,
		Tier:      r.Tier,
	}
}

func toRiskView(p domain.UserRiskProfile) RiskView {
	return RiskView{
		UserID:         p.UserID,
		Incidents:      p.Incidents,
		Total:          p.Total(),
		LastIncidentAt: p.LastIncidentAt,
	}
}
