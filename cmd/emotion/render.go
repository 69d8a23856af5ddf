package main

import (
	"emotion-lab/domain"
	emotiongrpc "emotion-lab/grpc"
	"emotion-lab/repositories"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type printer struct {
	out     io.Writer
	colours bool
}

func (p printer) severity(s domain.Severity) string {
	if !p.colours {
		return string(s)
	}
	switch s {
	case domain.SeverityCritical:
		return color.New(color.FgRed, color.OpBold).Render(string(s))
	case domain.SeverityHigh:
		return color.FgRed.Render(string(s))
	case domain.SeverityMedium:
		return color.FgYellow.Render(string(s))
	default:
		return color.FgGreen.Render(string(s))
	}
}

func (p printer) tier(t domain.AlertTier) string {
	if !p.colours || t == domain.TierNone {
		return string(t)
	}
	return p.severity(domain.Severity(t))
}

func (p printer) table(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// Analysis prints one result: the text passes, then the category scores.
func (p printer) Analysis(result domain.AnalysisResult, tier domain.AlertTier, alerts []domain.Alert) {
	fmt.Fprintf(p.out, "text:       %s\n", result.OriginalText)
	if result.CorrectedText != result.OriginalText {
		fmt.Fprintf(p.out, "normalized: %s\n", result.CorrectedText)
	}
	fmt.Fprintf(p.out, "language:   %s\n", result.DetectedLanguage)
	if len(result.SlangDetected) > 0 {
		fmt.Fprintf(p.out, "slang:      %s\n", strings.Join(result.SlangDetected, ", "))
	}
	if len(result.ErrorsFixed) > 0 {
		fmt.Fprintf(p.out, "typos:      %s\n", strings.Join(result.ErrorsFixed, ", "))
	}
	fmt.Fprintf(p.out, "emotion:    %s (%.0f%%)\n", result.DominantEmotion, result.Confidence)
	fmt.Fprintf(p.out, "severity:   %s, tier %s\n", p.severity(result.Severity), p.tier(tier))
	fmt.Fprintf(p.out, "models:     %s\n\n", strings.Join(result.ModelUsed, ", "))

	c := result.Categories
	table := p.table([]string{"Category", "Score"})
	table.AppendBulk([][]string{
		{"aggression", score(c.Aggression)},
		{"stress", score(c.Stress)},
		{"sarcasm", score(c.Sarcasm)},
		{"toxicity", score(c.Toxicity)},
		{"positivity", score(c.Positivity)},
	})
	table.Render()

	if len(alerts) > 0 {
		fmt.Fprintln(p.out)
		alertTable := p.table([]string{"Alert", "Tier", "Score"})
		for _, a := range alerts {
			alertTable.Append([]string{string(a.Type), p.tier(a.Tier), score(a.Score)})
		}
		alertTable.Render()
	}
}

func (p printer) Records(records []repositories.AnalysisRecord) {
	table := p.table([]string{"At", "Author", "Emotion", "Severity", "Toxicity", "Message"})
	for _, r := range records {
		table.Append([]string{
			r.At.Format("2006-01-02 15:04:05"),
			r.Author,
			string(r.Result.DominantEmotion),
			p.severity(r.Result.Severity),
			score(r.Result.Categories.Toxicity),
			r.Sanitized,
		})
	}
	table.Render()
}

func (p printer) SearchResults(resp emotiongrpc.SearchResponse) {
	fmt.Fprintf(p.out, "%d match(es)\n", resp.Total)
	table := p.table([]string{"At", "Author", "Emotion", "Severity", "Toxicity", "Message"})
	for _, r := range resp.Results {
		table.Append([]string{
			r.At.Format("2006-01-02 15:04:05"),
			r.Author,
			string(r.Emotion),
			p.severity(r.Severity),
			score(r.Toxicity),
			r.Sanitized,
		})
	}
	table.Render()
}

func (p printer) Stats(resp emotiongrpc.StatsResponse) {
	fmt.Fprintf(p.out, "chat %d: %d message(s), last at %s\n\n", resp.ChatID, resp.Messages, resp.LastMessageAt.Format("2006-01-02 15:04:05"))

	emotions := lo.Keys(resp.EmotionCounts)
	sort.Slice(emotions, func(i, j int) bool { return emotions[i] < emotions[j] })
	counts := p.table([]string{"Emotion", "Messages"})
	for _, e := range emotions {
		counts.Append([]string{string(e), fmt.Sprintf("%d", resp.EmotionCounts[e])})
	}
	counts.Render()

	fmt.Fprintf(p.out, "\nmood: %s dominant, %.0f%% negative over %d recent message(s), trend %s\n",
		resp.Mood.Dominant, resp.Mood.NegativeShare, resp.Mood.Messages, resp.Mood.Trend)

	a := resp.Averages
	fmt.Fprintf(p.out, "\naverages: aggression %s, stress %s, sarcasm %s, toxicity %s, positivity %s\n",
		score(a.Aggression), score(a.Stress), score(a.Sarcasm), score(a.Toxicity), score(a.Positivity))

	if len(resp.TopRisks) > 0 {
		fmt.Fprintln(p.out)
		risks := p.table([]string{"User", "Incidents", "Last incident"})
		for _, r := range resp.TopRisks {
			risks.Append([]string{r.UserID, fmt.Sprintf("%d", r.Total), r.LastIncidentAt.Format("2006-01-02 15:04:05")})
		}
		risks.Render()
	}
}

func score(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
