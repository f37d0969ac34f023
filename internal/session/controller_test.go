package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/i18n"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/planservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = i18n.MustLoad()

type stubGenerator struct {
	mu       sync.Mutex
	text     string
	err      error
	calls    int
	language string
	profile  fitness.UserProfile
	block    chan struct{}
	started  chan struct{}
}

func (s *stubGenerator) Generate(_ context.Context, profile fitness.UserProfile, languageName string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.profile = profile
	s.language = languageName
	s.mu.Unlock()

	if s.started != nil {
		close(s.started)
	}
	if s.block != nil {
		<-s.block
	}
	return s.text, s.err
}

func validFields(content *i18n.Content) RawFields {
	return RawFields{
		Weight:        "70kg",
		Height:        "175cm",
		Age:           "25",
		Gender:        content.Genders.Label(fitness.GenderMale),
		ActivityLevel: content.ActivityLevels.Label(fitness.ActivityModeratelyActive),
		Goal:          content.Goals.Label(fitness.GoalLoseWeight),
		TrainingDays:  "4",
		WorkoutPref:   content.WorkoutPrefs.Label(fitness.WorkoutGym),
	}
}

func TestSubmitProfileGeneratesPlan(t *testing.T) {
	gen := &stubGenerator{text: "## Plan"}
	ctrl := NewController(gen)
	fixed := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	ctrl.now = func() time.Time { return fixed }

	content := catalog.Content(i18n.Spanish)
	res, err := ctrl.SubmitProfile(context.Background(), validFields(content), content)
	require.NoError(t, err)
	require.NoError(t, res.GenerationErr)

	assert.Equal(t, "## Plan", res.Result.GeneratedText)
	assert.Equal(t, "Spanish", gen.language)
	assert.Equal(t, fitness.ActivityModeratelyActive, gen.profile.ActivityLevel)

	state := ctrl.CurrentState()
	assert.Equal(t, PhaseGenerated, state.Phase)
	assert.True(t, state.PlanGenerated)
	assert.Equal(t, "## Plan", state.Result.GeneratedText)
	assert.Empty(t, state.Result.ErrorMessage)
	assert.Equal(t, fixed, state.GeneratedAt)
	require.NotNil(t, state.Profile)
	assert.Equal(t, "70kg", state.Profile.Weight)
}

func TestSubmitProfileMissingRequiredLeavesStateUnchanged(t *testing.T) {
	content := catalog.Content(i18n.English)

	for _, tc := range []struct {
		name  string
		field string
		edit  func(*RawFields)
	}{
		{"empty weight", "weight", func(f *RawFields) { f.Weight = "" }},
		{"blank height", "height", func(f *RawFields) { f.Height = "   " }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerator{text: "plan"}
			ctrl := NewController(gen)
			ctrl.ResetSession()
			before := ctrl.CurrentState()

			fields := validFields(content)
			tc.edit(&fields)
			_, err := ctrl.SubmitProfile(context.Background(), fields, content)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, content.UI.MissingRequired, vErr.Message)
			assert.Equal(t, before, ctrl.CurrentState())
			assert.Zero(t, gen.calls)
		})
	}
}

func TestSubmitProfileGenerationFailure(t *testing.T) {
	transportErr := &planservice.GenerationError{Kind: planservice.ErrNetwork, Err: errors.New("dial tcp: connection refused")}
	gen := &stubGenerator{err: transportErr}
	ctrl := NewController(gen)
	content := catalog.Content(i18n.English)

	res, err := ctrl.SubmitProfile(context.Background(), validFields(content), content)
	require.NoError(t, err, "the submission itself was accepted")
	require.Error(t, res.GenerationErr)
	assert.ErrorIs(t, res.GenerationErr, planservice.ErrNetwork)

	state := ctrl.CurrentState()
	assert.False(t, state.PlanGenerated)
	assert.Equal(t, PhaseEmpty, state.Phase)
	assert.Empty(t, state.Result.GeneratedText)
	assert.Contains(t, state.Result.ErrorMessage, "connection refused")
	assert.Contains(t, state.Result.ErrorMessage, content.UI.GenerationFailed)

	// recoverable: a second submission goes through
	gen.err = nil
	gen.text = "plan"
	_, err = ctrl.SubmitProfile(context.Background(), validFields(content), content)
	require.NoError(t, err)
	assert.True(t, ctrl.CurrentState().PlanGenerated)
	assert.Empty(t, ctrl.CurrentState().Result.ErrorMessage)
}

func TestResetSessionClearsEverything(t *testing.T) {
	content := catalog.Content(i18n.English)
	ctrl := NewController(&stubGenerator{text: "plan"})
	_, err := ctrl.SubmitProfile(context.Background(), validFields(content), content)
	require.NoError(t, err)

	ctrl.ResetSession()
	state := ctrl.CurrentState()
	assert.Equal(t, PhaseEmpty, state.Phase)
	assert.Nil(t, state.Profile)
	assert.True(t, state.Result.IsZero())
	assert.False(t, state.PlanGenerated)
	assert.True(t, state.ResetForm)

	// reset from an empty session is allowed too
	fresh := NewController(&stubGenerator{})
	fresh.ResetSession()
	assert.Nil(t, fresh.CurrentState().Profile)
	assert.True(t, fresh.CurrentState().Result.IsZero())
}

func TestRequestNewPlan(t *testing.T) {
	content := catalog.Content(i18n.English)
	gen := &stubGenerator{text: "first plan"}
	ctrl := NewController(gen)

	assert.ErrorIs(t, ctrl.RequestNewPlan(), ErrNoPlan)

	_, err := ctrl.SubmitProfile(context.Background(), validFields(content), content)
	require.NoError(t, err)

	_, err = ctrl.SubmitProfile(context.Background(), validFields(content), content)
	assert.ErrorIs(t, err, ErrPlanExists)

	require.NoError(t, ctrl.RequestNewPlan())
	state := ctrl.CurrentState()
	assert.Equal(t, PhaseEmpty, state.Phase)
	assert.Empty(t, state.Result.GeneratedText)
	assert.False(t, state.PlanGenerated)
	assert.True(t, state.GenerateNew)
	assert.Nil(t, state.Profile)

	gen.text = "second plan"
	_, err = ctrl.SubmitProfile(context.Background(), validFields(content), content)
	require.NoError(t, err)
	assert.Equal(t, "second plan", ctrl.CurrentState().Result.GeneratedText)
}

func TestConsumeNoticesClearsFlags(t *testing.T) {
	ctrl := NewController(&stubGenerator{})
	ctrl.ResetSession()

	n := ctrl.ConsumeNotices()
	assert.True(t, n.Reset)
	assert.False(t, n.GenerateNew)
	assert.True(t, n.Any())

	assert.False(t, ctrl.ConsumeNotices().Any())
	assert.False(t, ctrl.CurrentState().ResetForm)
}

func TestSubmitWhileGeneratingIsRejected(t *testing.T) {
	content := catalog.Content(i18n.English)
	gen := &stubGenerator{text: "plan", block: make(chan struct{}), started: make(chan struct{})}
	ctrl := NewController(gen)

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.SubmitProfile(context.Background(), validFields(content), content)
		done <- err
	}()
	<-gen.started

	assert.Equal(t, PhaseSubmitting, ctrl.CurrentState().Phase)
	_, err := ctrl.SubmitProfile(context.Background(), validFields(content), content)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(gen.block)
	require.NoError(t, <-done)
	assert.Equal(t, PhaseGenerated, ctrl.CurrentState().Phase)
	assert.Equal(t, 1, gen.calls)
}

func TestResetDuringGenerationDiscardsResult(t *testing.T) {
	content := catalog.Content(i18n.English)
	gen := &stubGenerator{text: "late plan", block: make(chan struct{}), started: make(chan struct{})}
	ctrl := NewController(gen)

	done := make(chan SubmitResult, 1)
	go func() {
		res, err := ctrl.SubmitProfile(context.Background(), validFields(content), content)
		assert.NoError(t, err)
		done <- res
	}()
	<-gen.started

	ctrl.ResetSession()
	assert.Equal(t, PhaseEmpty, ctrl.CurrentState().Phase)

	// the abandoned call still counts until it returns
	_, err := ctrl.SubmitProfile(context.Background(), validFields(content), content)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(gen.block)
	res := <-done
	assert.True(t, res.Discarded)
	assert.Equal(t, "late plan", res.Result.GeneratedText)

	state := ctrl.CurrentState()
	assert.Equal(t, PhaseEmpty, state.Phase)
	assert.True(t, state.Result.IsZero())
	assert.Nil(t, state.Profile)

	gen.mu.Lock()
	gen.block = nil
	gen.started = nil
	gen.mu.Unlock()

	res, err = ctrl.SubmitProfile(context.Background(), validFields(content), content)
	require.NoError(t, err)
	assert.False(t, res.Discarded)
	assert.Equal(t, PhaseGenerated, ctrl.CurrentState().Phase)
	assert.Equal(t, 2, gen.calls)
}
