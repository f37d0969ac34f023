/*
Package i18n holds the static per-language content of the form: page texts,
question labels, enum display tables and the message pools. Everything is
validated once when the catalog is loaded.
*/
package i18n

import (
	"errors"
	"fmt"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"
)

// Questions are the form field labels.
type Questions struct {
	Weight           string
	Height           string
	Age              string
	Gender           string
	ActivityLevel    string
	Goal             string
	DietRestrictions string
	TrainingDays     string
	WorkoutPref      string
	ExperienceLevel  string
	Injuries         string
}

// Placeholders are the hint texts of the free-text inputs.
type Placeholders struct {
	Weight           string
	Height           string
	DietRestrictions string
	Injuries         string
}

// UIText covers the sidebar, buttons and one-shot notices.
type UIText struct {
	Settings         string
	ChooseLanguage   string
	YourProgress     string
	PlanGenerated    string
	PlanCreatedAt    string
	FillFormToStart  string
	QuickActions     string
	ResetForm        string
	GenerateNewPlan  string
	ResetNotice      string
	GenerateNotice   string
	OptionalInfo     string
	Submit           string
	ProfileSummary   string
	DownloadPlan     string
	TipPrefix        string
	MissingRequired  string
	GenerationFailed string
	Footer           string
	Disclaimer       string
}

// Content is the complete text set for one language.
type Content struct {
	Language     Language
	Welcome      string
	Subtitle     string
	Description  string
	FormTitle    string
	Generating   string
	PlanReady    string
	Questions    Questions
	Placeholders Placeholders
	UI           UIText

	Genders          *LabelTable[fitness.Gender]
	ActivityLevels   *LabelTable[fitness.ActivityLevel]
	Goals            *LabelTable[fitness.Goal]
	WorkoutPrefs     *LabelTable[fitness.WorkoutPref]
	ExperienceLevels *LabelTable[fitness.ExperienceLevel]

	MotivationalMessages []string
	Tips                 []string
}

// rawContent is the hand-written form of Content before validation.
type rawContent struct {
	Welcome      string
	Subtitle     string
	Description  string
	FormTitle    string
	Generating   string
	PlanReady    string
	Questions    Questions
	Placeholders Placeholders
	UI           UIText

	Genders          map[fitness.Gender]string
	ActivityLevels   map[fitness.ActivityLevel]string
	Goals            map[fitness.Goal]string
	WorkoutPrefs     map[fitness.WorkoutPref]string
	ExperienceLevels map[fitness.ExperienceLevel]string

	MotivationalMessages []string
	Tips                 []string
}

// Catalog is the validated content of every supported language.
type Catalog struct {
	contents map[Language]*Content
}

// Load validates the built-in content tables.
func Load() (*Catalog, error) {
	return load(map[Language]rawContent{
		English: english,
		Spanish: spanish,
	})
}

// MustLoad is Load for package initialization; it panics on invalid tables.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func load(raw map[Language]rawContent) (*Catalog, error) {
	c := &Catalog{contents: make(map[Language]*Content, len(raw))}

	var errs []error
	for _, lang := range Supported {
		r, ok := raw[lang]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: no content", lang))
			continue
		}
		content, err := build(lang, r)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", lang, err))
			continue
		}
		c.contents[lang] = content
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func build(lang Language, r rawContent) (*Content, error) {
	content := &Content{
		Language:             lang,
		Welcome:              r.Welcome,
		Subtitle:             r.Subtitle,
		Description:          r.Description,
		FormTitle:            r.FormTitle,
		Generating:           r.Generating,
		PlanReady:            r.PlanReady,
		Questions:            r.Questions,
		Placeholders:         r.Placeholders,
		UI:                   r.UI,
		MotivationalMessages: r.MotivationalMessages,
		Tips:                 r.Tips,
	}

	var err error
	if content.Genders, err = newLabelTable(fitness.Genders, r.Genders); err != nil {
		return nil, fmt.Errorf("genders: %w", err)
	}
	if content.ActivityLevels, err = newLabelTable(fitness.ActivityLevels, r.ActivityLevels); err != nil {
		return nil, fmt.Errorf("activity levels: %w", err)
	}
	if content.Goals, err = newLabelTable(fitness.Goals, r.Goals); err != nil {
		return nil, fmt.Errorf("goals: %w", err)
	}
	if content.WorkoutPrefs, err = newLabelTable(fitness.WorkoutPrefs, r.WorkoutPrefs); err != nil {
		return nil, fmt.Errorf("workout preferences: %w", err)
	}
	if content.ExperienceLevels, err = newLabelTable(fitness.ExperienceLevels, r.ExperienceLevels); err != nil {
		return nil, fmt.Errorf("experience levels: %w", err)
	}

	if len(r.MotivationalMessages) == 0 {
		return nil, errors.New("empty motivational message pool")
	}
	if len(r.Tips) == 0 {
		return nil, errors.New("empty tips pool")
	}

	return content, nil
}

// Content returns the content for lang, falling back to the default language.
func (c *Catalog) Content(lang Language) *Content {
	if content, ok := c.contents[lang]; ok {
		return content
	}
	return c.contents[Default]
}
