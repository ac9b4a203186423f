package dosha

// Option is a selectable questionnaire answer.
type Option struct {
	Text        string `json:"text"`
	Description string `json:"description"`
}

// Question is a single questionnaire entry. Answers must be submitted in
// question order; questions 5 and 6 may be skipped.
type Question struct {
	ID          int      `json:"id"`
	Text        string   `json:"text"`
	Description string   `json:"description"`
	Optional    bool     `json:"optional"`
	Options     []Option `json:"options"`
}

var questionnaire = []Question{
	{
		ID:          1,
		Text:        "What is your primary symptom?",
		Description: "Select the most prominent symptom you're experiencing right now.",
		Options: []Option{
			{Text: "Headache", Description: "Including tension, migraine, or general head discomfort"},
			{Text: "Fever", Description: "Elevated body temperature with or without chills"},
			{Text: "Fatigue", Description: "Persistent tiredness or lack of energy"},
			{Text: "Digestive Issues", Description: "Including bloating, indigestion, or irregular bowel movements"},
		},
	},
	{
		ID:          2,
		Text:        "How long have you been experiencing this symptom?",
		Description: "This helps determine if the condition is acute or chronic.",
		Options: []Option{
			{Text: "Less than a day", Description: "Symptoms started recently"},
			{Text: "1-3 days", Description: "Short-term acute condition"},
			{Text: "4-7 days", Description: "Extended acute condition"},
			{Text: "More than a week", Description: "Potentially chronic condition"},
		},
	},
	{
		ID:          3,
		Text:        "What time of day do you feel worse?",
		Description: "Different doshas are more active at different times of the day.",
		Options: []Option{
			{Text: "Morning", Description: "6 AM - 10 AM (Kapha time)"},
			{Text: "Afternoon", Description: "10 AM - 2 PM (Pitta time)"},
			{Text: "Evening", Description: "2 PM - 6 PM (Vata time)"},
			{Text: "Night", Description: "6 PM - 10 PM (Kapha time)"},
		},
	},
	{
		ID:          4,
		Text:        "Have you noticed any triggers?",
		Description: "Understanding triggers helps identify the root cause.",
		Options: []Option{
			{Text: "Food", Description: "Certain foods or eating habits"},
			{Text: "Weather", Description: "Changes in temperature or climate"},
			{Text: "Stress", Description: "Emotional or mental pressure"},
			{Text: "Physical Activity", Description: "Exercise or physical strain"},
		},
	},
	{
		ID:          5,
		Text:        "How would you describe your sleep pattern?",
		Description: "Sleep patterns can indicate dosha imbalances.",
		Optional:    true,
		Options: []Option{
			{Text: "Light and interrupted", Description: "Difficulty staying asleep, waking up frequently"},
			{Text: "Moderate but intense dreams", Description: "Sleep through the night but with vivid dreams"},
			{Text: "Heavy and prolonged", Description: "Deep sleep, difficulty waking up"},
			{Text: "Variable and inconsistent", Description: "Sleep pattern changes frequently"},
		},
	},
	{
		ID:          6,
		Text:        "What is your typical energy level throughout the day?",
		Description: "Energy patterns can reveal your dominant dosha.",
		Optional:    true,
		Options: []Option{
			{Text: "Variable and unpredictable", Description: "Energy comes in bursts, then crashes"},
			{Text: "Strong but burns out quickly", Description: "Intense focus but may exhaust easily"},
			{Text: "Steady but slow to start", Description: "Takes time to get going but maintains energy"},
			{Text: "Low and needs stimulation", Description: "Often feels lethargic and needs motivation"},
		},
	},
}

// Questions returns the symptom questionnaire served to clients.
func Questions() []Question {
	out := make([]Question, len(questionnaire))
	copy(out, questionnaire)
	return out
}
