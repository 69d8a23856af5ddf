package domain

import "time"

// ChatStats is the per-conversation aggregate kept by the stats store.
type ChatStats struct {
	ChatID        int64
	Messages      int
	EmotionCounts map[Emotion]int
	Sums          EmotionCategories
	LastMessageAt time.Time
}

func NewChatStats(chatID int64) ChatStats {
	return ChatStats{ChatID: chatID, EmotionCounts: make(map[Emotion]int)}
}

// Add folds one analysis into the aggregate and returns the updated copy.
func (s ChatStats) Add(result AnalysisResult, at time.Time) ChatStats {
	counts := make(map[Emotion]int, len(s.EmotionCounts)+1)
	for k, v := range s.EmotionCounts {
		counts[k] = v
	}
	counts[result.DominantEmotion]++
	s.EmotionCounts = counts
	s.Messages++
	s.Sums.Aggression += result.Categories.Aggression
	s.Sums.Stress += result.Categories.Stress
	s.Sums.Sarcasm += result.Categories.Sarcasm
	s.Sums.Toxicity += result.Categories.Toxicity
	s.Sums.Positivity += result.Categories.Positivity
	if at.After(s.LastMessageAt) {
		s.LastMessageAt = at
	}
	return s
}

// Averages returns the mean category scores, zero when no message was seen.
func (s ChatStats) Averages() EmotionCategories {
	if s.Messages == 0 {
		return EmotionCategories{}
	}
	n := float64(s.Messages)
	return EmotionCategories{
		Aggression: s.Sums.Aggression / n,
		Stress:     s.Sums.Stress / n,
		Sarcasm:    s.Sums.Sarcasm / n,
		Toxicity:   s.Sums.Toxicity / n,
		Positivity: s.Sums.Positivity / n,
	}
}

// UserRiskProfile accumulates incidents raised for one author in one chat.
type UserRiskProfile struct {
	ChatID         int64
	UserID         string
	Incidents      map[AlertType]int
	LastIncidentAt time.Time
}

func NewUserRiskProfile(chatID int64, userID string) UserRiskProfile {
	return UserRiskProfile{ChatID: chatID, UserID: userID, Incidents: make(map[AlertType]int)}
}

// Record adds the alerts to the profile and returns the updated copy.
func (p UserRiskProfile) Record(alerts []Alert, at time.Time) UserRiskProfile {
	incidents := make(map[AlertType]int, len(p.Incidents)+len(alerts))
	for k, v := range p.Incidents {
		incidents[k] = v
	}
	for _, a := range alerts {
		incidents[a.Type]++
	}
	p.Incidents = incidents
	if len(alerts) > 0 && at.After(p.LastIncidentAt) {
		p.LastIncidentAt = at
	}
	return p
}

// Total returns the number of incidents of all types.
func (p UserRiskProfile) Total() int {
	total := 0
	for _, v := range p.Incidents {
		total += v
	}
	return total
}
