package dto

// CheckInInput carries a new check-in from the CLI or TUI. The ID and
// timestamp are assigned by the service.
type CheckInInput struct {
	Primary         string
	Secondary       string
	Intensity       int
	BodyLocation    string
	Thought         string
	ThoughtTags     []string
	BehaviourUrge   string
	BehaviourAction string
	Value           string
	Context         string
}

// EmotionCount is one row of the index's per-emotion aggregate.
type EmotionCount struct {
	Emotion string
	Count   int
}

// DayCount is one row of the index's per-day aggregate. Day is a local
// calendar date in 2006-01-02 form.
type DayCount struct {
	Day   string
	Count int
}
