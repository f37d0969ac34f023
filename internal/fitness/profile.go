/*
Package fitness holds the domain model of the plan generator: the user profile,
its canonical enum keys and the prompt that is sent to the language model.
*/
package fitness

// Canonical enum keys. These never change with the UI language; the i18n
// package maps them to localized display labels.
type (
	Gender          string
	ActivityLevel   string
	Goal            string
	WorkoutPref     string
	ExperienceLevel string
)

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly active"
	ActivityModeratelyActive ActivityLevel = "Moderately active"
	ActivityVeryActive       ActivityLevel = "Very active"
	ActivityExtremelyActive  ActivityLevel = "Extremely active"
)

const (
	GoalLoseWeight       Goal = "Lose weight"
	GoalGainMuscle       Goal = "Gain muscle"
	GoalMaintainWeight   Goal = "Maintain weight"
	GoalImproveEndurance Goal = "Improve endurance"
	GoalGeneralFitness   Goal = "General fitness"
)

const (
	WorkoutGym  WorkoutPref = "Gym access"
	WorkoutHome WorkoutPref = "Home workouts only"
	WorkoutBoth WorkoutPref = "Both"
)

const (
	ExperienceBeginner     ExperienceLevel = "Beginner"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceAdvanced     ExperienceLevel = "Advanced"
)

// Ordered key lists, in the order the form presents them.
var (
	Genders          = []Gender{GenderMale, GenderFemale, GenderOther}
	ActivityLevels   = []ActivityLevel{ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtremelyActive}
	Goals            = []Goal{GoalLoseWeight, GoalGainMuscle, GoalMaintainWeight, GoalImproveEndurance, GoalGeneralFitness}
	WorkoutPrefs     = []WorkoutPref{WorkoutGym, WorkoutHome, WorkoutBoth}
	ExperienceLevels = []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}
)

// Form bounds and defaults.
const (
	MinAge             = 13
	MaxAge             = 100
	DefaultAge         = 25
	MinTrainingDays    = 1
	MaxTrainingDays    = 7
	DefaultTrainingDay = 3

	// NoneValue is stored for optional free-text fields the user left blank.
	NoneValue = "None"
	// NotSpecified is rendered into the prompt for any field that is still empty.
	NotSpecified = "Not specified"
)

// UserProfile is the validated set of attributes a plan is generated from.
// It is only ever built whole by the validation step and replaced wholesale.
type UserProfile struct {
	Weight           string          `json:"weight"`
	Height           string          `json:"height"`
	Age              int             `json:"age"`
	Gender           Gender          `json:"gender"`
	ActivityLevel    ActivityLevel   `json:"activity_level"`
	Goal             Goal            `json:"goal"`
	DietRestrictions string          `json:"diet_restrictions"`
	TrainingDays     int             `json:"training_days"`
	WorkoutPref      WorkoutPref     `json:"workout_pref"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	Injuries         string          `json:"injuries"`
}

// OrNone returns NoneValue when s is empty.
func OrNone(s string) string {
	if s == "" {
		return NoneValue
	}
	return s
}
