// Package report renders analysis results as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Color variables for console output.
var (
	HighColor     = color.New(color.FgRed, color.Bold)
	ModerateColor = color.New(color.FgYellow)
	LowColor      = color.New(color.FgGreen)
	WarnColor     = color.New(color.FgMagenta)
	HeadingColor  = color.New(color.FgCyan, color.Bold)
)

// BurnoutLabel colours a burnout level.
func BurnoutLabel(level domain.BurnoutLevel) string {
	switch level {
	case domain.BurnoutHigh:
		return HighColor.Sprint(string(level))
	case domain.BurnoutModerate:
		return ModerateColor.Sprint(string(level))
	default:
		return LowColor.Sprint(string(level))
	}
}

// StreakLabel colours a streak status.
func StreakLabel(status domain.StreakStatus) string {
	switch status {
	case domain.StreakBroken:
		return HighColor.Sprint(string(status))
	case domain.StreakNew:
		return ModerateColor.Sprint(string(status))
	default:
		return LowColor.Sprint(string(status))
	}
}

func heading(w io.Writer, title string) error {
	_, err := fmt.Fprintln(w, HeadingColor.Sprint(title))
	return err
}

func bullets(w io.Writer, items []string, empty string) error {
	if len(items) == 0 {
		_, err := fmt.Fprintf(w, "  %s\n", empty)
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "  - %s\n", WarnColor.Sprint(item)); err != nil {
			return err
		}
	}
	return nil
}

func render(w io.Writer, headers []string, rows [][]string, align tw.Align) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = align
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func fmtRatio(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Day writes the analysis of a single day.
func Day(w io.Writer, a *domain.DayAnalysis) error {
	if err := heading(w, "Day analysis"); err != nil {
		return err
	}
	rows := [][]string{
		{"Completion", fmtRatio(a.CompletionRatio)},
		{"Productivity", fmtRatio(a.ProductivityScore)},
		{"Burnout", BurnoutLabel(a.BurnoutFlag)},
	}
	if err := render(w, []string{"Metric", "Value"}, rows, tw.AlignLeft); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Gaps:"); err != nil {
		return err
	}
	if err := bullets(w, a.Gaps, "none"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Risks:"); err != nil {
		return err
	}
	return bullets(w, a.RiskFlags, "none")
}

// Trend writes a multi-day trend. A nil trend means nothing was logged.
func Trend(w io.Writer, t *domain.TrendSummary) error {
	if err := heading(w, "Trend"); err != nil {
		return err
	}
	if t == nil {
		_, err := fmt.Fprintln(w, "  No logs yet.")
		return err
	}
	rows := [][]string{{
		strconv.Itoa(t.DaysAnalyzed),
		fmtRatio(t.AvgCompletion),
		fmtRatio(t.AvgEnergy),
		fmtRatio(t.AvgClarity),
		BurnoutLabel(t.BurnoutRisk),
		string(t.Consistency),
	}}
	return render(w, []string{"Days", "Completion", "Energy", "Clarity", "Burnout", "Consistency"}, rows, tw.AlignRight)
}

// Balance writes topic coverage and balance risks.
func Balance(w io.Writer, b domain.BalanceSummary) error {
	if err := heading(w, fmt.Sprintf("Balance (%d days)", b.DaysAnalyzed)); err != nil {
		return err
	}

	topics := make([]string, 0, len(b.Coverage))
	for topic := range b.Coverage {
		topics = append(topics, string(topic))
	}
	sort.Strings(topics)

	rows := make([][]string, 0, len(topics))
	for _, topic := range topics {
		days := b.Coverage[domain.Topic(topic)]
		share := "-"
		if b.DaysAnalyzed > 0 {
			share = fmtRatio(float64(days) / float64(b.DaysAnalyzed))
		}
		rows = append(rows, []string{topic, strconv.Itoa(days), share})
	}
	if err := render(w, []string{"Topic", "Days", "Share"}, rows, tw.AlignRight); err != nil {
		return err
	}
	return bullets(w, b.Risks, "balanced")
}

// Depth writes a depth profile; name labels the subject (e.g. "AI", "DSA").
func Depth(w io.Writer, name string, p domain.DepthProfile) error {
	if err := heading(w, name+" depth"); err != nil {
		return err
	}

	levels := make([]int, 0, len(p.LevelScore))
	for level := range p.LevelScore {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	rows := make([][]string, 0, len(levels))
	for _, level := range levels {
		marker := ""
		if level == p.DominantLevel {
			marker = "*"
		}
		rows = append(rows, []string{strconv.Itoa(level), strconv.Itoa(p.LevelScore[level]), marker})
	}
	if err := render(w, []string{"Level", "Count", "Dominant"}, rows, tw.AlignRight); err != nil {
		return err
	}
	return bullets(w, p.Warnings, "no warnings")
}

// Verdict writes the synthesized verdicts and recovery advice.
func Verdict(w io.Writer, v domain.WeeklyVerdict) error {
	if err := heading(w, "Verdict"); err != nil {
		return err
	}
	for _, line := range v.Verdicts {
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return err
		}
	}
	if v.Recovery != nil {
		if _, err := fmt.Fprintf(w, "Recovery Advice:\n  %s\n", ModerateColor.Sprint(*v.Recovery)); err != nil {
			return err
		}
	}
	return nil
}

// Weekly writes every section of a weekly report.
func Weekly(w io.Writer, r domain.WeeklyReport) error {
	window := fmt.Sprintf("Window: %d of last %d logs", r.Window.Count, r.Window.Days)
	if r.Window.From != nil && r.Window.To != nil {
		window += fmt.Sprintf(" (%s to %s)", r.Window.From.Format(domain.DateLayout), r.Window.To.Format(domain.DateLayout))
	}
	if _, err := fmt.Fprintln(w, window); err != nil {
		return err
	}

	steps := []func() error{
		func() error { return Trend(w, r.Trend) },
		func() error { return Balance(w, r.Balance) },
		func() error { return Depth(w, "AI", r.AIDepth) },
		func() error { return Depth(w, "DSA", r.DSADepth) },
		func() error { return Verdict(w, r.Verdict) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Streak writes the check-in status line.
func Streak(w io.Writer, s domain.StreakSummary) error {
	last := s.LastLogDate
	if last == "" {
		last = "-"
	}
	_, err := fmt.Fprintf(w, "Streak: %s  length=%d  last=%s  discipline=%d/100\n",
		StreakLabel(s.Status), s.Length, last, s.DisciplineScore)
	return err
}

// Logs writes stored logs, one row per day.
func Logs(w io.Writer, logs []domain.DailyLog) error {
	rows := make([][]string, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		rows = append(rows, []string{
			l.LogDate.Format(domain.DateLayout),
			firstLine(l.PlannedTasks),
			firstLine(l.ActualTasks),
			strconv.Itoa(l.Energy),
			strconv.Itoa(l.Clarity),
		})
	}
	return render(w, []string{"Date", "Planned", "Actual", "Energy", "Clarity"}, rows, tw.AlignLeft)
}

// History writes stored weekly verdicts, newest first.
func History(w io.Writer, records []domain.WeeklyVerdictRecord) error {
	rows := make([][]string, 0, len(records))
	for i := range records {
		rows = append(rows, []string{
			records[i].WeekStart.Format(domain.DateLayout),
			strings.ReplaceAll(records[i].VerdictText, "\n", " / "),
		})
	}
	return render(w, []string{"Week of", "Verdict"}, rows, tw.AlignLeft)
}

// firstLine returns the first non-blank line of text, marking when more follow.
func firstLine(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	switch len(lines) {
	case 0:
		return "-"
	case 1:
		return lines[0]
	default:
		return fmt.Sprintf("%s (+%d)", lines[0], len(lines)-1)
	}
}
