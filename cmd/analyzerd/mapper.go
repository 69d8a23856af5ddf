package main

import (
	"emotion-lab/codec"
	"emotion-lab/repositories"
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// AnalysisMapper renders stored analyses in the Badger inspector.
func AnalysisMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	if !strings.HasPrefix(key, "analysis:") {
		return row
	}

	var record repositories.AnalysisRecord
	if err := codec.Unmarshal(val, &record); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	row.Type = strings.ToUpper(string(record.Result.DominantEmotion))
	row.Timestamp = record.At.Format("15:04:05")
	row.Detail = record.Sanitized
	c := record.Result.Categories
	row.Scores = fmt.Sprintf("aggr:%.0f stress:%.0f sarc:%.0f tox:%.0f pos:%.0f sev:%s",
		c.Aggression, c.Stress, c.Sarcasm, c.Toxicity, c.Positivity, record.Result.Severity)
	return row
}
