package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/i18n"
	"github.com/rs/zerolog"
)

var (
	// ErrSubmissionInFlight rejects a submit while the previous one is still generating.
	ErrSubmissionInFlight = errors.New("a plan is already being generated for this session")
	// ErrPlanExists rejects a submit while a plan is shown; reset or request a new plan first.
	ErrPlanExists = errors.New("a plan has already been generated for this session")
	// ErrNoPlan rejects a new-plan request when no plan is shown.
	ErrNoPlan = errors.New("no generated plan to replace")
)

// PlanGenerator produces plan text for a profile. *planservice.Generator implements it.
type PlanGenerator interface {
	Generate(ctx context.Context, profile fitness.UserProfile, languageName string) (string, error)
}

// SubmitResult is the outcome of an accepted submission. GenerationErr is set
// when the external call failed; the session then stays in PhaseEmpty.
type SubmitResult struct {
	Profile       fitness.UserProfile
	Result        PlanResult
	GenerationErr error
	// Discarded is set when the session was reset while the plan was being
	// generated; Result is then not part of the session.
	Discarded bool
}

// Controller runs the state machine of one session.
//
//	Empty --submit(valid)--> Submitting --success--> Generated
//	Submitting --failure--> Empty (error result kept)
//	Empty --submit(invalid)--> Empty
//	any --reset--> Empty
//	Generated --generate_new--> Empty
type Controller struct {
	mu        sync.Mutex
	state     SessionState
	epoch     uint64
	inFlight  bool // outlives a reset until the call returns
	generator PlanGenerator
	now       func() time.Time
}

// NewController returns a controller in PhaseEmpty.
func NewController(generator PlanGenerator) *Controller {
	return &Controller{generator: generator, now: time.Now}
}

// SubmitProfile validates raw and, when valid, generates a plan synchronously.
// A non-nil error means the submission was not accepted and the state is
// untouched: *ValidationError, ErrSubmissionInFlight or ErrPlanExists.
func (c *Controller) SubmitProfile(ctx context.Context, raw RawFields, content *i18n.Content) (SubmitResult, error) {
	logger := zerolog.Ctx(ctx)

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return SubmitResult{}, ErrSubmissionInFlight
	}
	if c.state.Phase == PhaseGenerated {
		c.mu.Unlock()
		return SubmitResult{}, ErrPlanExists
	}

	profile, err := ParseProfile(raw, content)
	if err != nil {
		c.mu.Unlock()
		logger.Info().Err(err).Msg("Profile submission rejected")
		return SubmitResult{}, err
	}

	c.state = SessionState{Phase: PhaseSubmitting, Profile: profile}
	c.inFlight = true
	epoch := c.epoch
	c.mu.Unlock()

	text, genErr := c.generator.Generate(ctx, *profile, content.Language.Name())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	res := SubmitResult{Profile: *profile, GenerationErr: genErr}
	if genErr != nil {
		res.Result = PlanResult{ErrorMessage: content.UI.GenerationFailed + " " + genErr.Error()}
	} else {
		res.Result = PlanResult{GeneratedText: text}
	}

	if c.epoch != epoch {
		// reset while generating; the result belongs to a discarded cycle
		logger.Info().Msg("Session was reset during generation, discarding result")
		res.Discarded = true
		return res, nil
	}

	c.state.Result = res.Result
	if genErr != nil {
		c.state.Phase = PhaseEmpty
		c.state.PlanGenerated = false
		return res, nil
	}

	c.state.Phase = PhaseGenerated
	c.state.PlanGenerated = true
	c.state.GeneratedAt = c.now()
	return res, nil
}

// CurrentState returns a snapshot of the session.
func (c *Controller) CurrentState() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.state
	if c.state.Profile != nil {
		p := *c.state.Profile
		snapshot.Profile = &p
	}
	return snapshot
}

// ResetSession clears profile and plan from any phase and raises the reset notice.
func (c *Controller) ResetSession() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.state = SessionState{Phase: PhaseEmpty, ResetForm: true, GenerateNew: c.state.GenerateNew}
}

// RequestNewPlan discards the shown plan so the form can be submitted again.
func (c *Controller) RequestNewPlan() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase != PhaseGenerated {
		return ErrNoPlan
	}
	c.state = SessionState{Phase: PhaseEmpty, GenerateNew: true, ResetForm: c.state.ResetForm}
	return nil
}

// ConsumeNotices returns the pending notices and clears them.
func (c *Controller) ConsumeNotices() Notices {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := Notices{Reset: c.state.ResetForm, GenerateNew: c.state.GenerateNew}
	c.state.ResetForm = false
	c.state.GenerateNew = false
	return n
}
