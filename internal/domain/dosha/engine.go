package dosha

// Dosha is one of the three Ayurvedic constitution types.
type Dosha string

const (
	Vata  Dosha = "VATA"
	Pitta Dosha = "PITTA"
	Kapha Dosha = "KAPHA"
)

// Answers is the ordered questionnaire response. Sleep and Energy are
// optional; an empty string contributes nothing to the score.
type Answers struct {
	Primary   string `json:"primary"`
	Duration  string `json:"duration"`
	TimeOfDay string `json:"time_of_day"`
	Trigger   string `json:"trigger"`
	Sleep     string `json:"sleep,omitempty"`
	Energy    string `json:"energy,omitempty"`
}

// Scores holds the weighted-vote accumulators for each dosha.
type Scores struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

// Result is the outcome of a classification.
type Result struct {
	Dosha       Dosha    `json:"dosha"`
	Description string   `json:"description"`
	Remedies    []string `json:"remedies"`
	Scores      Scores   `json:"scores"`
}

// ScoreAnswers runs the rule table over the answers and returns the raw
// accumulators. Unrecognized answer strings score zero.
func ScoreAnswers(a Answers) Scores {
	var s Scores

	switch a.Primary {
	case "Headache":
		s.Vata += 2
		s.Pitta++
	case "Fever":
		s.Pitta += 2
	case "Fatigue":
		s.Kapha += 2
		s.Vata++
	case "Digestive Issues":
		s.Vata++
		s.Pitta += 2
	}

	switch a.Duration {
	case "Less than a day":
		s.Vata += 2
	case "1-3 days":
		s.Pitta += 2
	case "4-7 days":
		s.Kapha++
		s.Pitta++
	case "More than a week":
		s.Kapha += 2
	}

	switch a.TimeOfDay {
	case "Morning":
		s.Kapha += 2
	case "Afternoon":
		s.Pitta += 2
	case "Evening":
		s.Vata++
	case "Night":
		s.Vata += 2
	}

	switch a.Trigger {
	case "Food":
		s.Pitta += 2
	case "Weather":
		s.Vata += 2
	case "Stress":
		s.Vata += 2
	case "Physical Activity":
		s.Kapha += 2
	}

	switch a.Sleep {
	case "Light and interrupted":
		s.Vata += 3
	case "Moderate but intense dreams":
		s.Pitta += 3
	case "Heavy and prolonged":
		s.Kapha += 3
	case "Variable and inconsistent":
		s.Vata += 2
		s.Pitta++
	}

	switch a.Energy {
	case "Variable and unpredictable":
		s.Vata += 3
	case "Strong but burns out quickly":
		s.Pitta += 3
	case "Steady but slow to start":
		s.Kapha += 3
	case "Low and needs stimulation":
		s.Kapha += 2
		s.Vata++
	}

	return s
}

// Dominant resolves the winning dosha. Ties break in precedence order
// Vata, then Pitta, then Kapha.
func (s Scores) Dominant() Dosha {
	if s.Vata >= s.Pitta && s.Vata >= s.Kapha {
		return Vata
	}
	if s.Pitta >= s.Vata && s.Pitta >= s.Kapha {
		return Pitta
	}
	return Kapha
}

// Classify scores the answers and returns the dominant dosha with its
// recommendation bundle. Classification is pure and total: it cannot fail.
func Classify(a Answers) Result {
	scores := ScoreAnswers(a)
	dosha := scores.Dominant()
	rec := RecommendationsFor(dosha)
	return Result{
		Dosha:       dosha,
		Description: rec.Description,
		Remedies:    rec.Remedies,
		Scores:      scores,
	}
}

// Recommendation is the static guidance attached to a dosha.
type Recommendation struct {
	Description string   `json:"description"`
	Remedies    []string `json:"remedies"`
}

// RecommendationsFor returns the recommendation bundle for a dosha. Unknown
// values get a generic consult-a-practitioner bundle.
func RecommendationsFor(d Dosha) Recommendation {
	switch d {
	case Vata:
		return Recommendation{
			Description: "You show signs of Vata imbalance. Vata is associated with movement, cold, and irregularity. This dosha governs all movement in the mind and body. Vata types are typically creative, quick-thinking, and energetic when balanced.",
			Remedies: []string{
				"Maintain regular daily routines",
				"Favor warm, cooked, and easily digestible foods",
				"Practice gentle yoga and meditation",
				"Use warm oil massage (abhyanga)",
				"Stay warm and avoid cold, dry environments",
				"Get adequate rest and avoid excessive stimulation",
			},
		}
	case Pitta:
		return Recommendation{
			Description: "You show signs of Pitta imbalance. Pitta is associated with heat, metabolism, and transformation. This dosha governs digestion and metabolism. Pitta types are typically focused, determined, and intelligent when balanced.",
			Remedies: []string{
				"Avoid spicy and hot foods",
				"Practice cooling breathing exercises",
				"Engage in moderate exercise during cooler times",
				"Use coconut or sunflower oil for massage",
				"Include sweet, bitter, and astringent tastes in diet",
				"Take time to relax and avoid excessive competition",
			},
		}
	case Kapha:
		return Recommendation{
			Description: "You show signs of Kapha imbalance. Kapha is associated with structure, stability, and moisture. This dosha maintains body resistance. Kapha types are typically calm, grounded, and loyal when balanced.",
			Remedies: []string{
				"Exercise regularly, especially in the morning",
				"Favor light, warm, and spicy foods",
				"Practice stimulating breathing exercises",
				"Use dry massage with powder",
				"Stay active and avoid daytime napping",
				"Embrace change and new experiences",
			},
		}
	default:
		return Recommendation{
			Description: "Unable to determine dosha balance.",
			Remedies: []string{
				"Consult with an Ayurvedic practitioner",
				"Maintain a balanced lifestyle",
				"Follow a regular daily routine",
				"Practice mindful eating",
				"Get adequate rest and exercise",
			},
		}
	}
}
