package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/i18n"
)

// RawFields is the form as submitted. Select fields carry the localized
// display label; canonical keys are accepted too.
type RawFields struct {
	Weight           string       `json:"weight" form:"weight"`
	Height           string       `json:"height" form:"height"`
	Age              NumericField `json:"age" form:"age"`
	Gender           string       `json:"gender" form:"gender"`
	ActivityLevel    string       `json:"activity_level" form:"activity_level"`
	Goal             string       `json:"goal" form:"goal"`
	DietRestrictions string       `json:"diet_restrictions" form:"diet_restrictions"`
	TrainingDays     NumericField `json:"training_days" form:"training_days"`
	WorkoutPref      string       `json:"workout_pref" form:"workout_pref"`
	ExperienceLevel  string       `json:"experience_level" form:"experience_level"`
	Injuries         string       `json:"injuries" form:"injuries"`
}

// NumericField is a number field as entered. JSON clients may send it either
// as a number or as a string; forms always send text.
type NumericField string

// UnmarshalJSON accepts a JSON number, string or null.
func (n *NumericField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericField(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("numeric field: %w", err)
	}
	*n = NumericField(num.String())
	return nil
}

// UnmarshalParam binds the raw form value.
func (n *NumericField) UnmarshalParam(param string) error {
	*n = NumericField(param)
	return nil
}

// ValidationError rejects a submission. Message is meant for the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ParseProfile validates raw against the label tables of content and builds a
// complete profile. Blank selects and numbers take the form defaults.
func ParseProfile(raw RawFields, content *i18n.Content) (*fitness.UserProfile, error) {
	weight := strings.TrimSpace(raw.Weight)
	height := strings.TrimSpace(raw.Height)
	if weight == "" {
		return nil, &ValidationError{Field: "weight", Message: content.UI.MissingRequired}
	}
	if height == "" {
		return nil, &ValidationError{Field: "height", Message: content.UI.MissingRequired}
	}

	age, err := parseBounded("age", string(raw.Age), fitness.MinAge, fitness.MaxAge, fitness.DefaultAge)
	if err != nil {
		return nil, err
	}
	days, err := parseBounded("training_days", string(raw.TrainingDays), fitness.MinTrainingDays, fitness.MaxTrainingDays, fitness.DefaultTrainingDay)
	if err != nil {
		return nil, err
	}

	gender, err := resolve("gender", raw.Gender, content.Genders)
	if err != nil {
		return nil, err
	}
	activity, err := resolve("activity_level", raw.ActivityLevel, content.ActivityLevels)
	if err != nil {
		return nil, err
	}
	goal, err := resolve("goal", raw.Goal, content.Goals)
	if err != nil {
		return nil, err
	}
	workout, err := resolve("workout_pref", raw.WorkoutPref, content.WorkoutPrefs)
	if err != nil {
		return nil, err
	}
	experience, err := resolve("experience_level", raw.ExperienceLevel, content.ExperienceLevels)
	if err != nil {
		return nil, err
	}

	return &fitness.UserProfile{
		Weight:           weight,
		Height:           height,
		Age:              age,
		Gender:           gender,
		ActivityLevel:    activity,
		Goal:             goal,
		DietRestrictions: fitness.OrNone(strings.TrimSpace(raw.DietRestrictions)),
		TrainingDays:     days,
		WorkoutPref:      workout,
		ExperienceLevel:  experience,
		Injuries:         fitness.OrNone(strings.TrimSpace(raw.Injuries)),
	}, nil
}

func parseBounded(field, raw string, lo, hi, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("must be a whole number between %d and %d", lo, hi)}
	}
	return n, nil
}

// resolve maps a submitted label (or canonical key) to its key. A blank value
// selects the first option, as the form does.
func resolve[K ~string](field, raw string, table *i18n.LabelTable[K]) (K, error) {
	raw = strings.TrimSpace(raw)
	keys := table.Keys()
	if raw == "" {
		return keys[0], nil
	}
	if k, ok := table.Key(raw); ok {
		return k, nil
	}
	for _, k := range keys {
		if string(k) == raw {
			return k, nil
		}
	}
	var zero K
	return zero, &ValidationError{Field: field, Message: fmt.Sprintf("unknown option %q", raw)}
}
