package fitness

import (
	"fmt"
	"strconv"
)

/* =================================================================================
						PROMPT ENGINEERING & GUARDRAILS
=================================================================================*/

/*
SystemPrompt defines the "Persona" of the model: a professional coach that puts
user safety first and points to healthcare professionals when needed.
*/
const SystemPrompt = "You are a professional fitness and nutrition coach with expertise in creating personalized, safe, and effective fitness plans. Always prioritize user safety and encourage professional consultation when needed."

// Section markers the model is asked to produce, in order.
const (
	SectionAssessment = "PERSONAL ASSESSMENT"
	SectionSchedule   = "WEEKLY WORKOUT SCHEDULE"
	SectionNutrition  = "NUTRITION PLAN"
	SectionProgress   = "PROGRESS TRACKING"
	SectionTips       = "SUCCESS TIPS"
)

// Sections lists every section marker the prompt requires.
var Sections = []string{SectionAssessment, SectionSchedule, SectionNutrition, SectionProgress, SectionTips}

// SafetyDirective is always part of the prompt.
const SafetyDirective = "Ensure the advice is safe and encourages consulting healthcare professionals when appropriate."

// UserPromptTemplate is filled positionally by BuildPrompt.
// 1: language, 2-12: profile fields, 13-17: section markers, 18: safety directive.
const UserPromptTemplate = `Create a comprehensive, personalized fitness and nutrition plan in %[1]s for someone with these characteristics:

Personal Information:
- Weight: %[2]s
- Height: %[3]s
- Age: %[4]s
- Gender: %[5]s
- Activity Level: %[6]s
- Primary Goal: %[7]s
- Dietary Restrictions: %[8]s
- Available Training Days: %[9]s days per week
- Workout Preference: %[10]s
- Fitness Experience Level: %[11]s
- Injuries or Physical Limitations: %[12]s

Please provide a comprehensive plan with the following sections:

1. 📊 %[13]s
- BMI calculation and assessment
- Fitness level evaluation
- Goal feasibility and timeline

2. 🏋️‍♂️ %[14]s
- Detailed day-by-day workout plan
- Specific exercises with sets and reps
- Progressive difficulty recommendations

3. 🥗 %[15]s
- Daily calorie target
- Macronutrient breakdown
- Meal timing suggestions
- Sample meal ideas

4. 📈 %[16]s
- Key metrics to monitor
- Timeline for expected results
- Milestone checkpoints

5. 💡 %[17]s
- Motivation strategies
- Common pitfalls to avoid
- Lifestyle integration tips

Make it practical, motivating, and achievable. Use emojis and clear formatting.
%[18]s
`

// BuildPrompt renders the user prompt for profile. languageName is the natural
// language the plan must be written in ("English", "Spanish"); the profile
// values themselves are passed through untranslated.
func BuildPrompt(profile UserProfile, languageName string) string {
	return fmt.Sprintf(
		UserPromptTemplate,
		orDefault(languageName, "English"),
		orDefault(profile.Weight, NotSpecified),
		orDefault(profile.Height, NotSpecified),
		intOrDefault(profile.Age),
		orDefault(string(profile.Gender), NotSpecified),
		orDefault(string(profile.ActivityLevel), NotSpecified),
		orDefault(string(profile.Goal), NotSpecified),
		orDefault(profile.DietRestrictions, NoneValue),
		intOrDefault(profile.TrainingDays),
		orDefault(string(profile.WorkoutPref), NotSpecified),
		orDefault(string(profile.ExperienceLevel), NotSpecified),
		orDefault(profile.Injuries, NoneValue),
		SectionAssessment,
		SectionSchedule,
		SectionNutrition,
		SectionProgress,
		SectionTips,
		SafetyDirective,
	)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func intOrDefault(n int) string {
	if n <= 0 {
		return NotSpecified
	}
	return strconv.Itoa(n)
}
