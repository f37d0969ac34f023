package i18n

import "github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"

var english = rawContent{
	Welcome:     "Welcome to FitBot! 🏋️‍♂️",
	Subtitle:    "Your AI-Powered Personal Fitness Coach",
	Description: "Get a personalized fitness and nutrition plan tailored just for you!",
	FormTitle:   "📋 Personal Information",
	Generating:  "🔄 Generating your personalized fitness plan...",
	PlanReady:   "🎉 Your Personalized Fitness Plan is Ready!",
	Questions: Questions{
		Weight:           "Current Weight (kg or lbs)",
		Height:           "Height (e.g., 5'8\" or 175cm)",
		Age:              "Age",
		Gender:           "Gender",
		ActivityLevel:    "Current Activity Level",
		Goal:             "Primary Fitness Goal",
		DietRestrictions: "Dietary Restrictions/Allergies",
		TrainingDays:     "Training Days per Week",
		WorkoutPref:      "Workout Preference",
		ExperienceLevel:  "Fitness Experience Level",
		Injuries:         "Any injuries or physical limitations?",
	},
	Placeholders: Placeholders{
		Weight:           "e.g., 70kg or 154lbs",
		Height:           "e.g., 175cm or 5'9\"",
		DietRestrictions: "e.g., vegetarian, lactose intolerant, none",
		Injuries:         "e.g., knee injury, back problems, none",
	},
	UI: UIText{
		Settings:         "⚙️ Settings",
		ChooseLanguage:   "🌐 Choose Language",
		YourProgress:     "📊 Your Progress",
		PlanGenerated:    "✅ Plan Generated!",
		PlanCreatedAt:    "📅 Plan created:",
		FillFormToStart:  "📝 Fill out the form to get started",
		QuickActions:     "🔗 Quick Actions",
		ResetForm:        "🔄 Reset Form",
		GenerateNewPlan:  "📄 Generate New Plan",
		ResetNotice:      "✅ Form reset! Please fill it out again.",
		GenerateNotice:   "📝 Please fill out the form to generate a new plan.",
		OptionalInfo:     "Optional Information:",
		Submit:           "🚀 Generate My Fitness Plan",
		ProfileSummary:   "👤 Your Profile Summary",
		DownloadPlan:     "📋 Download Plan",
		TipPrefix:        "💡 Tip:",
		MissingRequired:  "⚠️ Please fill in your weight and height!",
		GenerationFailed: "❌ Error generating fitness plan:",
		Footer:           "🤖 Powered by AI | 💪 Built for Your Fitness Success",
		Disclaimer:       "⚠️ Always consult with healthcare professionals before starting any new fitness program.",
	},
	Genders: map[fitness.Gender]string{
		fitness.GenderMale:   "Male",
		fitness.GenderFemale: "Female",
		fitness.GenderOther:  "Other",
	},
	ActivityLevels: map[fitness.ActivityLevel]string{
		fitness.ActivitySedentary:        "Sedentary (little to no exercise)",
		fitness.ActivityLightlyActive:    "Lightly active (light exercise 1-3 days/week)",
		fitness.ActivityModeratelyActive: "Moderately active (moderate exercise 3-5 days/week)",
		fitness.ActivityVeryActive:       "Very active (hard exercise 6-7 days/week)",
		fitness.ActivityExtremelyActive:  "Extremely active (very hard exercise, physical job)",
	},
	Goals: map[fitness.Goal]string{
		fitness.GoalLoseWeight:       "Lose weight 📉",
		fitness.GoalGainMuscle:       "Gain muscle 💪",
		fitness.GoalMaintainWeight:   "Maintain weight ⚖️",
		fitness.GoalImproveEndurance: "Improve endurance 🏃‍♂️",
		fitness.GoalGeneralFitness:   "General fitness 🌟",
	},
	WorkoutPrefs: map[fitness.WorkoutPref]string{
		fitness.WorkoutGym:  "Gym access 🏋️‍♂️",
		fitness.WorkoutHome: "Home workouts only 🏠",
		fitness.WorkoutBoth: "Both gym and home 🔄",
	},
	ExperienceLevels: map[fitness.ExperienceLevel]string{
		fitness.ExperienceBeginner:     "Beginner",
		fitness.ExperienceIntermediate: "Intermediate",
		fitness.ExperienceAdvanced:     "Advanced",
	},
	MotivationalMessages: []string{
		"💪 Remember: Progress, not perfection! Every small step counts.",
		"🔥 Consistency is the key to achieving your fitness dreams.",
		"⭐ Your future self will thank you for the effort you put in today.",
		"🏆 Every workout is a victory! Keep pushing toward your goals.",
		"💯 Believe in yourself! You're stronger than you think.",
	},
	Tips: []string{
		"💧 Stay hydrated - aim for 8 glasses of water daily",
		"😴 Get 7-9 hours of sleep for optimal recovery",
		"📱 Track your progress with photos and measurements",
		"🥗 Prep your meals in advance for consistency",
		"👥 Find a workout buddy for accountability",
	},
}
