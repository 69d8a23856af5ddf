package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is an inbound chat message as handed over by the bot collaborator.
type Message struct {
	ID      uuid.UUID
	ChatID  int64
	Author  string
	Content string
	At      time.Time
}
