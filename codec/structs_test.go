package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

type sample struct {
	ChatID int64          `json:"chat_id,string"`
	Text   string         `json:"text"`
	Score  float64        `json:"score"`
	Counts map[string]int `json:"counts"`
	At     time.Time      `json:"at"`
	Tags   []string       `json:"tags"`
}

func TestMarshal_KeepsLargeIntegersAndTimes(t *testing.T) {
	req := require.New(t)

	// Given a chat id beyond float64 precision
	in := sample{
		ChatID: -1001234567890123456,
		Text:   "ты дурак 🙄",
		Score:  92.5,
		Counts: map[string]int{"aggression": 2},
		At:     time.Date(2026, 10, 19, 12, 0, 0, 123456789, time.UTC),
		Tags:   []string{"a", "b"},
	}

	// When round tripping through the binary encoding
	data, err := Marshal(in)
	req.NoError(err)
	var out sample
	req.NoError(Unmarshal(data, &out))

	// Then nothing is lost
	req.Equal(in.ChatID, out.ChatID)
	req.Equal(in.Text, out.Text)
	req.Equal(in.Score, out.Score)
	req.Equal(in.Counts, out.Counts)
	req.True(in.At.Equal(out.At))
	req.Equal(in.Tags, out.Tags)
}

func TestToStruct_RejectsNonObjects(t *testing.T) {
	req := require.New(t)
	_, err := ToStruct([]int{1, 2})
	req.Error(err)
	_, err = ToStruct("text")
	req.Error(err)
}

func TestFromStruct(t *testing.T) {
	req := require.New(t)
	s, err := structpb.NewStruct(map[string]any{"text": "привет", "score": 3.0})
	req.NoError(err)

	var out sample
	req.NoError(FromStruct(s, &out))
	req.Equal("привет", out.Text)
	req.Equal(3.0, out.Score)
}

func TestUnmarshal_Garbage(t *testing.T) {
	var out sample
	require.Error(t, Unmarshal([]byte{0xff, 0xff, 0xff}, &out))
}
