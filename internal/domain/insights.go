package domain

// CoachingOutput contains the structured output from the LLM.
// @Description LLM-generated coaching note for a weekly report.
type CoachingOutput struct {
	// Summary of the week (2-3 sentences)
	Summary string `json:"summary" example:"You kept maths moving but GS slipped midweek..."`
	// Concrete next steps (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Pair each maths block with one GS reading\"]"`
}

// CoachingContext is the deterministic data sent to the LLM.
type CoachingContext struct {
	Report WeeklyReport  `json:"report"`
	Streak StreakSummary `json:"streak"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Weekly report with an LLM coaching note.
type InsightsResponse struct {
	Report   WeeklyReport   `json:"report"`
	Streak   StreakSummary  `json:"streak"`
	Coaching CoachingOutput `json:"coaching"`
	// Trace ID for feedback (only present when tracing is active)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// FeedbackRequest rates a coaching note.
// @Description User rating for a coaching note.
type FeedbackRequest struct {
	// Trace ID returned by the insights endpoint
	TraceID string `json:"trace_id" validate:"required" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating from 1 (useless) to 5 (very useful)
	Rating int `json:"rating" validate:"required,min=1,max=5" example:"4"`
	// Optional free-text comment
	Comment string `json:"comment,omitempty" validate:"max=2000" example:"Actionable plan"`
}
