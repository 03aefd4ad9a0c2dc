package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/repository"
	"github.com/google/uuid"
)

// SeededDays is how many days ending today get sample logs.
const SeededDays = 21

var plans = [][]string{
	{"Maths: Linear algebra vector spaces", "GS Polity: Fundamental Rights", "DSA: LeetCode graphs revise"},
	{"Maths: Calculus problem set", "History notes", "AI: Watch lecture on transformers"},
	{"DSA: Codeforces easy round", "Economy: Budget summary", "Maths: Probability revise"},
	{"AI: Implement attention from scratch", "Geography: Monsoon notes", "Maths: Statistics"},
	{"GS: Environment current affairs", "DSA: Data structure heaps", "AI: Read paper on RLHF"},
	{"Maths: Real analysis proofs", "Polity: Parliament", "AI: Trained a small model, compared results"},
	{"History: Modern India", "DSA: GFG trees medium", "Maths: Vector calculus"},
}

// Run inserts SeededDays of sample logs ending at today. Dates that already
// have a log are left untouched, so it is safe to call repeatedly.
func Run(ctx context.Context, repo repository.DailyLogRepository, today time.Time) (int, error) {
	rng := rand.New(rand.NewSource(today.Unix()))
	today = domain.NormalizeDate(today)

	created := 0
	for i := 0; i < SeededDays; i++ {
		date := today.AddDate(0, 0, -i)

		_, err := repo.GetByDate(ctx, date)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return created, fmt.Errorf("check %s: %w", date.Format(domain.DateLayout), err)
		}

		planned := plans[i%len(plans)]
		done := planned[:1+rng.Intn(len(planned))]

		entry := &domain.DailyLog{
			ID:           uuid.New(),
			LogDate:      date,
			PlannedTasks: strings.Join(planned, "\n"),
			ActualTasks:  strings.Join(done, "\n"),
			Energy:       3 + rng.Intn(7),
			Clarity:      3 + rng.Intn(7),
			Reflection:   fmt.Sprintf("Finished %d of %d planned blocks.", len(done), len(planned)),
		}
		if err := repo.Upsert(ctx, entry); err != nil {
			return created, fmt.Errorf("seed %s: %w", date.Format(domain.DateLayout), err)
		}
		created++
	}

	log.Printf("[seed] created %d of %d sample logs", created, SeededDays)
	return created, nil
}
