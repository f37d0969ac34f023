package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/session"
	"github.com/labstack/echo/v4"
)

/* ====================================================================
                   		Form Page Handlers
==================================================================== */

// indexHandler renders the form or the generated plan from session state.
// Pending notices are shown once and cleared.
func (s *Server) indexHandler(c echo.Context) error {
	ctrl, err := s.controller(c)
	if err != nil {
		return err
	}

	lang := resolveLanguage(c)
	notices := ctrl.ConsumeNotices()
	data := s.buildPage(lang, ctrl.CurrentState(), notices, nil)

	return c.Render(http.StatusOK, "index.html", data)
}

// submitPlanHandler validates the form and generates the plan synchronously.
func (s *Server) submitPlanHandler(c echo.Context) error {
	logger := getLogger(c)

	ctrl, err := s.controller(c)
	if err != nil {
		return err
	}

	var raw session.RawFields
	if err := c.Bind(&raw); err != nil {
		logger.Error().Err(err).Msg("Failed to bind form")
		return c.String(http.StatusBadRequest, "invalid form submission")
	}

	lang := resolveLanguage(c)
	content := s.catalog.Content(lang)

	res, err := ctrl.SubmitProfile(c.Request().Context(), raw, content)

	var vErr *session.ValidationError
	switch {
	case errors.As(err, &vErr):
		data := s.buildPage(lang, ctrl.CurrentState(), session.Notices{}, &formView{
			Values:     raw,
			Error:      vErr.Message,
			ErrorField: vErr.Field,
		})
		return c.Render(http.StatusUnprocessableEntity, "index.html", data)

	case errors.Is(err, session.ErrSubmissionInFlight), errors.Is(err, session.ErrPlanExists):
		logger.Info().Err(err).Msg("Submission ignored")

	case err != nil:
		return err

	case res.Discarded:
		logger.Info().Msg("Session was reset before the plan arrived")

	case res.GenerationErr != nil:
		logger.Error().Err(res.GenerationErr).Msg("Plan generation failed")

	default:
		logger.Info().Str("goal", string(res.Profile.Goal)).Msg("Plan generated for session")
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) resetHandler(c echo.Context) error {
	ctrl, err := s.controller(c)
	if err != nil {
		return err
	}
	ctrl.ResetSession()
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) newPlanHandler(c echo.Context) error {
	ctrl, err := s.controller(c)
	if err != nil {
		return err
	}
	if err := ctrl.RequestNewPlan(); err != nil {
		getLogger(c).Info().Err(err).Msg("New plan requested without a plan")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// downloadPlanHandler serves the current plan as a Markdown file.
func (s *Server) downloadPlanHandler(c echo.Context) error {
	ctrl, err := s.controller(c)
	if err != nil {
		return err
	}

	state := ctrl.CurrentState()
	if !state.PlanGenerated {
		return c.String(http.StatusNotFound, "no plan generated yet")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="fitness-plan.md"`)
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(state.Result.GeneratedText))
}

/* ====================================================================
                   		JSON API Handlers
==================================================================== */

// PlanResponse is returned by POST /api/plan on success.
type PlanResponse struct {
	Plan        string              `json:"plan"`
	Profile     fitness.UserProfile `json:"profile"`
	Language    string              `json:"language"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// StateResponse wraps the session snapshot with the resolved language.
type StateResponse struct {
	Language string               `json:"language"`
	State    session.SessionState `json:"state"`
}

func (s *Server) apiStateHandler(c echo.Context) error {
	ctrl, err := s.controller(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, StateResponse{Language: string(resolveLanguage(c)), State: ctrl.CurrentState()})
}

func (s *Server) apiSubmitPlanHandler(c echo.Context) error {
	logger := getLogger(c)

	ctrl, err := s.controller(c)
	if err != nil {
		return err
	}

	var raw session.RawFields
	if err := c.Bind(&raw); err != nil {
		logger.Error().Err(err).Msg("Failed to bind request body")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	lang := resolveLanguage(c)
	res, err := ctrl.SubmitProfile(c.Request().Context(), raw, s.catalog.Content(lang))

	var vErr *session.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, session.ErrSubmissionInFlight), errors.Is(err, session.ErrPlanExists):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case err != nil:
		return err
	case res.Discarded:
		return c.JSON(http.StatusConflict, map[string]string{"error": "session was reset while the plan was being generated"})
	case res.GenerationErr != nil:
		logger.Error().Err(res.GenerationErr).Msg("Plan generation failed")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": res.Result.ErrorMessage})
	}

	return c.JSON(http.StatusOK, PlanResponse{
		Plan:        res.Result.GeneratedText,
		Profile:     res.Profile,
		Language:    string(lang),
		GeneratedAt: ctrl.CurrentState().GeneratedAt,
	})
}

func (s *Server) apiResetHandler(c echo.Context) error {
	ctrl, err := s.controller(c)
	if err != nil {
		return err
	}
	ctrl.ResetSession()
	return c.JSON(http.StatusOK, StateResponse{Language: string(resolveLanguage(c)), State: ctrl.CurrentState()})
}

func (s *Server) apiNewPlanHandler(c echo.Context) error {
	ctrl, err := s.controller(c)
	if err != nil {
		return err
	}
	if err := ctrl.RequestNewPlan(); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, StateResponse{Language: string(resolveLanguage(c)), State: ctrl.CurrentState()})
}

// controller returns the session controller of the request.
func (s *Server) controller(c echo.Context) (*session.Controller, error) {
	ctrl, _, err := s.sessions.Controller(c.Response(), c.Request())
	if err != nil {
		getLogger(c).Error().Err(err).Msg("Failed to load session")
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	return ctrl, nil
}
