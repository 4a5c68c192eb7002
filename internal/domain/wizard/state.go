package wizard

import (
	"errors"
	"time"

	"experience-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidLayout         = errors.New("layout must be desktop or mobile")
	ErrSubmissionInProgress  = errors.New("a submission is already in progress")
	ErrNotReadyForSubmission = errors.New("wizard has not reached the details step")
	ErrNotSubmitting         = errors.New("no submission in progress")
)

type Layout string

const (
	LayoutDesktop Layout = "desktop"
	LayoutMobile  Layout = "mobile"
)

func NewLayout(s string) (Layout, error) {
	l := Layout(s)
	switch l {
	case LayoutDesktop, LayoutMobile:
		return l, nil
	case "":
		return LayoutDesktop, nil
	default:
		return "", ErrInvalidLayout
	}
}

type Step string

const (
	StepSelectActivity Step = "select_activity"
	StepSelectDateTime Step = "select_date_time"
	StepEnterDetails   Step = "enter_details"
)

// Field names reported when a transition is rejected.
const (
	FieldActivity     = "activity"
	FieldDate         = "date"
	FieldTimeSlot     = "time slot"
	FieldParticipants = "participants"
)

// State is a wizard session. It is a value; every transition returns a new one.
type State struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"userId"`
	Layout           Layout     `json:"layout"`
	Step             Step       `json:"step"`
	ActivityID       *uuid.UUID `json:"activityId,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	SlotID           *uuid.UUID `json:"slotId,omitempty"`
	ParticipantCount int        `json:"participantCount"`
	Submitting       bool       `json:"submitting"`
}

func NewState(userID uuid.UUID, layout Layout) State {
	return State{
		ID:               uuid.New(),
		UserID:           userID,
		Layout:           layout,
		Step:             StepSelectActivity,
		ParticipantCount: pricing.MinParticipants,
	}
}

// Steps lists the states for the layout in order.
func (s State) Steps() []Step {
	if s.Layout == LayoutMobile {
		return []Step{StepSelectActivity, StepSelectDateTime, StepEnterDetails}
	}
	return []Step{StepSelectActivity, StepEnterDetails}
}

func (s State) StepIndex() int {
	for i, st := range s.Steps() {
		if st == s.Step {
			return i
		}
	}
	return 0
}

// Result is the outcome of a forward transition. A rejected transition is
// not an error; Missing names what the caller must ask for.
type Result struct {
	State    State    `json:"state"`
	Advanced bool     `json:"advanced"`
	Missing  []string `json:"missingFields,omitempty"`
}

// Selection is a partial update. Nil fields are left untouched.
type Selection struct {
	ActivityID       *uuid.UUID
	Date             *time.Time
	SlotID           *uuid.UUID
	ParticipantCount *int
}

// Select applies a selection. Changing the activity or the date drops the
// chosen slot since it no longer belongs to the new pair.
func (s State) Select(sel Selection) (State, error) {
	if sel.ParticipantCount != nil {
		if err := pricing.ValidateParticipantCount(*sel.ParticipantCount); err != nil {
			return s, err
		}
		s.ParticipantCount = *sel.ParticipantCount
	}
	if sel.ActivityID != nil && !sameID(s.ActivityID, sel.ActivityID) {
		id := *sel.ActivityID
		s.ActivityID = &id
		s.SlotID = nil
	}
	if sel.Date != nil {
		d := truncateDay(*sel.Date)
		if s.Date == nil || !s.Date.Equal(d) {
			s.SlotID = nil
		}
		s.Date = &d
	}
	if sel.SlotID != nil {
		id := *sel.SlotID
		s.SlotID = &id
	}
	return s, nil
}

func (s State) Next() Result {
	missing := s.missingFor(s.Step)
	if len(missing) > 0 {
		return Result{State: s, Missing: missing}
	}
	steps := s.Steps()
	i := s.StepIndex()
	if i >= len(steps)-1 {
		return Result{State: s}
	}
	s.Step = steps[i+1]
	return Result{State: s, Advanced: true}
}

// Back always succeeds and keeps entered data. It is a no-op on the first step.
func (s State) Back() State {
	i := s.StepIndex()
	if i > 0 {
		s.Step = s.Steps()[i-1]
	}
	return s
}

func (s State) missingFor(step Step) []string {
	var missing []string
	switch step {
	case StepSelectActivity:
		if s.ActivityID == nil {
			missing = append(missing, FieldActivity)
		}
		if s.Layout != LayoutMobile {
			missing = append(missing, s.missingDateTime()...)
		}
	case StepSelectDateTime:
		missing = append(missing, s.missingDateTime()...)
	}
	return missing
}

func (s State) missingDateTime() []string {
	var missing []string
	if s.Date == nil {
		missing = append(missing, FieldDate)
	}
	if s.SlotID == nil {
		missing = append(missing, FieldTimeSlot)
	}
	return missing
}

// BeginSubmit locks the session against repeat submission. The returned
// Result is rejected when selections are incomplete.
func (s State) BeginSubmit() (Result, error) {
	if s.Submitting {
		return Result{}, ErrSubmissionInProgress
	}
	if s.Step != StepEnterDetails {
		return Result{}, ErrNotReadyForSubmission
	}
	var missing []string
	for _, st := range s.Steps() {
		missing = append(missing, s.missingFor(st)...)
	}
	if pricing.ValidateParticipantCount(s.ParticipantCount) != nil {
		missing = append(missing, FieldParticipants)
	}
	if len(missing) > 0 {
		return Result{State: s, Missing: missing}, nil
	}
	s.Submitting = true
	return Result{State: s, Advanced: true}, nil
}

// CompleteSubmit releases the lock. On success the session resets to its
// initial step with selections cleared; on failure it stays on details.
func (s State) CompleteSubmit(succeeded bool) (State, error) {
	if !s.Submitting {
		return s, ErrNotSubmitting
	}
	if succeeded {
		fresh := NewState(s.UserID, s.Layout)
		fresh.ID = s.ID
		return fresh, nil
	}
	s.Submitting = false
	return s, nil
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
