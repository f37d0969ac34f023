package i18n

import "github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"

var spanish = rawContent{
	Welcome:     "¡Bienvenido a FitBot! 🏋️‍♂️",
	Subtitle:    "Tu Entrenador Personal con IA",
	Description: "¡Obtén un plan de fitness y nutrición personalizado hecho para ti!",
	FormTitle:   "📋 Información Personal",
	Generating:  "🔄 Generando tu plan de fitness personalizado...",
	PlanReady:   "🎉 ¡Tu Plan de Fitness Personalizado está Listo!",
	Questions: Questions{
		Weight:           "Peso Actual (kg o libras)",
		Height:           "Altura (ej: 1.75m o 5'8\")",
		Age:              "Edad",
		Gender:           "Género",
		ActivityLevel:    "Nivel de Actividad Actual",
		Goal:             "Objetivo Principal de Fitness",
		DietRestrictions: "Restricciones Dietéticas/Alergias",
		TrainingDays:     "Días de Entrenamiento por Semana",
		WorkoutPref:      "Preferencia de Entrenamiento",
		ExperienceLevel:  "Nivel de Experiencia en Fitness",
		Injuries:         "¿Alguna lesión o limitación física?",
	},
	Placeholders: Placeholders{
		Weight:           "ej: 70kg o 154 libras",
		Height:           "ej: 175cm o 5'9\"",
		DietRestrictions: "ej: vegetariano, intolerante a la lactosa, ninguna",
		Injuries:         "ej: lesión de rodilla, problemas de espalda, ninguna",
	},
	UI: UIText{
		Settings:         "⚙️ Configuración",
		ChooseLanguage:   "🌐 Elegir Idioma",
		YourProgress:     "📊 Tu Progreso",
		PlanGenerated:    "✅ ¡Plan Generado!",
		PlanCreatedAt:    "📅 Plan creado:",
		FillFormToStart:  "📝 Completa el formulario para comenzar",
		QuickActions:     "🔗 Acciones Rápidas",
		ResetForm:        "🔄 Reiniciar Formulario",
		GenerateNewPlan:  "📄 Generar Nuevo Plan",
		ResetNotice:      "✅ ¡Formulario reiniciado! Por favor, complétalo de nuevo.",
		GenerateNotice:   "📝 Completa el formulario para generar un nuevo plan.",
		OptionalInfo:     "Información Opcional:",
		Submit:           "🚀 Generar Mi Plan de Fitness",
		ProfileSummary:   "👤 Resumen de tu Perfil",
		DownloadPlan:     "📋 Descargar Plan",
		TipPrefix:        "💡 Consejo:",
		MissingRequired:  "⚠️ ¡Por favor, ingresa tu peso y altura!",
		GenerationFailed: "❌ Error al generar el plan de fitness:",
		Footer:           "🤖 Impulsado por IA | 💪 Hecho para tu Éxito en Fitness",
		Disclaimer:       "⚠️ Consulta siempre con profesionales de la salud antes de comenzar un nuevo programa de ejercicio.",
	},
	Genders: map[fitness.Gender]string{
		fitness.GenderMale:   "Masculino",
		fitness.GenderFemale: "Femenino",
		fitness.GenderOther:  "Otro",
	},
	ActivityLevels: map[fitness.ActivityLevel]string{
		fitness.ActivitySedentary:        "Sedentario (poco o nada de ejercicio)",
		fitness.ActivityLightlyActive:    "Ligeramente activo (ejercicio ligero 1-3 días/semana)",
		fitness.ActivityModeratelyActive: "Moderadamente activo (ejercicio moderado 3-5 días/semana)",
		fitness.ActivityVeryActive:       "Muy activo (ejercicio intenso 6-7 días/semana)",
		fitness.ActivityExtremelyActive:  "Extremadamente activo (ejercicio muy intenso, trabajo físico)",
	},
	Goals: map[fitness.Goal]string{
		fitness.GoalLoseWeight:       "Perder peso 📉",
		fitness.GoalGainMuscle:       "Ganar músculo 💪",
		fitness.GoalMaintainWeight:   "Mantener peso ⚖️",
		fitness.GoalImproveEndurance: "Mejorar resistencia 🏃‍♂️",
		fitness.GoalGeneralFitness:   "Fitness general 🌟",
	},
	WorkoutPrefs: map[fitness.WorkoutPref]string{
		fitness.WorkoutGym:  "Acceso a gimnasio 🏋️‍♂️",
		fitness.WorkoutHome: "Solo entrenamientos en casa 🏠",
		fitness.WorkoutBoth: "Ambos gimnasio y casa 🔄",
	},
	ExperienceLevels: map[fitness.ExperienceLevel]string{
		fitness.ExperienceBeginner:     "Principiante",
		fitness.ExperienceIntermediate: "Intermedio",
		fitness.ExperienceAdvanced:     "Avanzado",
	},
	MotivationalMessages: []string{
		"💪 Recuerda: ¡Progreso, no perfección! Cada pequeño paso cuenta.",
		"🔥 La consistencia es la clave para lograr tus sueños de fitness.",
		"⭐ Tu yo futuro te agradecerá el esfuerzo que pongas hoy.",
		"🏆 ¡Cada entrenamiento es una victoria! Sigue empujando hacia tus objetivos.",
		"💯 ¡Cree en ti mismo! Eres más fuerte de lo que piensas.",
	},
	Tips: []string{
		"💧 Mantente hidratado: apunta a 8 vasos de agua al día",
		"😴 Duerme de 7 a 9 horas para una recuperación óptima",
		"📱 Registra tu progreso con fotos y medidas",
		"🥗 Prepara tus comidas con anticipación para ser constante",
		"👥 Busca un compañero de entrenamiento para mantenerte motivado",
	},
}
