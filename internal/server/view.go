package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/i18n"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const langCookie = "lang"

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	sanitize = bluemonday.UGCPolicy()
)

/* ====================================================================
                   		View models
==================================================================== */

type languageOption struct {
	Code     string
	Label    string
	Selected bool
}

type selectOption struct {
	Label    string
	Selected bool
}

type selectField struct {
	Name    string
	Label   string
	Options []selectOption
}

type formView struct {
	Values     session.RawFields
	Error      string
	ErrorField string
	Gender     selectField
	Activity   selectField
	Goal       selectField
	Workout    selectField
	Experience selectField
}

type summaryView struct {
	Weight string
	Height string
	Age    int
	Goal   string
}

type pageData struct {
	Lang              i18n.Language
	Languages         []languageOption
	C                 *i18n.Content
	State             session.SessionState
	Notices           session.Notices
	Submitting        bool
	ShowForm          bool
	Motivation        string
	ClosingMotivation string
	Tip               string
	GeneratedAt       string
	Form              formView
	Summary           summaryView
	PlanHTML          template.HTML
}

// resolveLanguage picks the UI language: explicit lang parameter (query or
// form field, remembered in a cookie), then the cookie, then Accept-Language.
func resolveLanguage(c echo.Context) i18n.Language {
	if lang, ok := i18n.Parse(c.FormValue("lang")); ok {
		c.SetCookie(&http.Cookie{
			Name:     langCookie,
			Value:    lang.Code(),
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return lang
	}
	if cookie, err := c.Cookie(langCookie); err == nil {
		if lang, ok := i18n.Parse(cookie.Value); ok {
			return lang
		}
	}
	return i18n.Negotiate(c.Request().Header.Get("Accept-Language"))
}

// renderMarkdown turns model output into sanitized HTML.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitize.SanitizeBytes(buf.Bytes()))
}

func (s *Server) pickOne(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[s.pick(len(pool))]
}

// buildPage assembles the view of state. form carries the submitted values
// and error of a rejected submission; nil means the form is prefilled from
// the session (or defaults).
func (s *Server) buildPage(lang i18n.Language, state session.SessionState, notices session.Notices, form *formView) pageData {
	content := s.catalog.Content(lang)

	data := pageData{
		Lang:       lang,
		C:          content,
		State:      state,
		Notices:    notices,
		Submitting: state.Phase == session.PhaseSubmitting,
		ShowForm:   !state.PlanGenerated && state.Phase != session.PhaseSubmitting,
		Motivation: s.pickOne(content.MotivationalMessages),
	}

	for _, l := range i18n.Supported {
		data.Languages = append(data.Languages, languageOption{Code: l.Code(), Label: l.DisplayName(), Selected: l == lang})
	}

	if state.PlanGenerated {
		data.PlanHTML = renderMarkdown(state.Result.GeneratedText)
		data.ClosingMotivation = s.pickOne(content.MotivationalMessages)
		data.Tip = s.pickOne(content.Tips)
		if !state.GeneratedAt.IsZero() {
			data.GeneratedAt = state.GeneratedAt.Format("2006-01-02 15:04")
		}
		if state.Profile != nil {
			data.Summary = summaryView{
				Weight: state.Profile.Weight,
				Height: state.Profile.Height,
				Age:    state.Profile.Age,
				Goal:   content.Goals.Label(state.Profile.Goal),
			}
		}
	}

	if data.ShowForm {
		if form == nil {
			form = &formView{Values: prefill(content, state.Profile)}
		}
		fillSelects(form, content)
		data.Form = *form
	}

	return data
}

// prefill returns the form values for profile, or the form defaults.
func prefill(content *i18n.Content, profile *fitness.UserProfile) session.RawFields {
	if profile == nil {
		return session.RawFields{
			Age:          session.NumericField(strconv.Itoa(fitness.DefaultAge)),
			TrainingDays: session.NumericField(strconv.Itoa(fitness.DefaultTrainingDay)),
		}
	}
	return session.RawFields{
		Weight:           profile.Weight,
		Height:           profile.Height,
		Age:              session.NumericField(strconv.Itoa(profile.Age)),
		Gender:           content.Genders.Label(profile.Gender),
		ActivityLevel:    content.ActivityLevels.Label(profile.ActivityLevel),
		Goal:             content.Goals.Label(profile.Goal),
		DietRestrictions: noneToBlank(profile.DietRestrictions),
		TrainingDays:     session.NumericField(strconv.Itoa(profile.TrainingDays)),
		WorkoutPref:      content.WorkoutPrefs.Label(profile.WorkoutPref),
		ExperienceLevel:  content.ExperienceLevels.Label(profile.ExperienceLevel),
		Injuries:         noneToBlank(profile.Injuries),
	}
}

func noneToBlank(s string) string {
	if s == fitness.NoneValue {
		return ""
	}
	return s
}

func fillSelects(form *formView, content *i18n.Content) {
	q := content.Questions
	form.Gender = newSelect("gender", q.Gender, content.Genders.Options(), form.Values.Gender)
	form.Activity = newSelect("activity_level", q.ActivityLevel, content.ActivityLevels.Options(), form.Values.ActivityLevel)
	form.Goal = newSelect("goal", q.Goal, content.Goals.Options(), form.Values.Goal)
	form.Workout = newSelect("workout_pref", q.WorkoutPref, content.WorkoutPrefs.Options(), form.Values.WorkoutPref)
	form.Experience = newSelect("experience_level", q.ExperienceLevel, content.ExperienceLevels.Options(), form.Values.ExperienceLevel)
}

func newSelect(name, label string, options []i18n.Option, selected string) selectField {
	f := selectField{Name: name, Label: label}
	for _, o := range options {
		f.Options = append(f.Options, selectOption{Label: o.Label, Selected: o.Label == selected || o.Key == selected})
	}
	return f
}
