package fitness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func scenarioProfile() UserProfile {
	return UserProfile{
		Weight:        "70kg",
		Height:        "175cm",
		Age:           25,
		Gender:        GenderMale,
		ActivityLevel: ActivityModeratelyActive,
		Goal:          GoalLoseWeight,
		TrainingDays:  4,
		WorkoutPref:   WorkoutGym,
	}
}

func TestBuildPromptScenario(t *testing.T) {
	prompt := BuildPrompt(scenarioProfile(), "English")

	for _, want := range []string{"70kg", "175cm", "Moderately active", "Lose weight", "4", "Gym access"} {
		assert.Contains(t, prompt, want)
	}
	for _, section := range Sections {
		assert.Contains(t, prompt, section)
	}
	assert.Contains(t, prompt, "in English for someone")
	assert.Contains(t, prompt, "consulting healthcare professionals")
	assert.Contains(t, prompt, "Available Training Days: 4 days per week")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	p := scenarioProfile()
	p.DietRestrictions = "vegetarian"
	p.Injuries = "knee"

	first := BuildPrompt(p, "Spanish")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildPrompt(p, "Spanish"))
	}
}

func TestBuildPromptDefaultsForMissingFields(t *testing.T) {
	prompt := BuildPrompt(UserProfile{Weight: "80kg", Height: "180cm"}, "English")

	assert.Contains(t, prompt, "- Dietary Restrictions: None\n")
	assert.Contains(t, prompt, "- Injuries or Physical Limitations: None\n")
	assert.Contains(t, prompt, "- Age: Not specified\n")
	assert.Contains(t, prompt, "- Gender: Not specified\n")
	assert.NotContains(t, prompt, ": \n", "no field may render empty")
}

func TestBuildPromptNamesLanguageOnly(t *testing.T) {
	p := scenarioProfile()
	prompt := BuildPrompt(p, "Spanish")

	assert.True(t, strings.HasPrefix(prompt, "Create a comprehensive, personalized fitness and nutrition plan in Spanish"))
	// values are passed through untranslated
	assert.Contains(t, prompt, "Primary Goal: Lose weight")
}
