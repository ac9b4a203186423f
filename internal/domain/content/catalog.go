package content

var remedies = []Remedy{
	{
		ID:          "1",
		Title:       "Ginger Tea for Headache",
		Description: "Natural remedy for tension headaches and migraines",
		Category:    "Neurological",
		Instructions: []string{
			"Grate 1 inch of fresh ginger",
			"Boil 2 cups of water and add grated ginger",
			"Add 2-3 tulsi leaves (optional)",
			"Steep for 5-10 minutes",
			"Strain and add honey and lemon if desired",
			"Drink while warm, 2-3 times a day",
		},
		Ingredients: []string{
			"Fresh ginger root (1 inch)",
			"Water (2 cups)",
			"Honey (to taste)",
			"Lemon (optional)",
			"Tulsi leaves (optional)",
		},
		Benefits: []string{
			"Reduces inflammation",
			"Relieves headache pain",
			"Improves circulation",
			"Natural pain relief",
			"Boosts immunity",
			"Reduces nausea",
		},
	},
	{
		ID:          "2",
		Title:       "Turmeric Milk for Joint Pain",
		Description: "Anti-inflammatory golden milk for joint health and immunity",
		Category:    "Musculoskeletal",
		Instructions: []string{
			"Heat 1 cup of milk (preferably organic)",
			"Add 1 teaspoon turmeric powder",
			"Add 1/4 teaspoon black pepper",
			"Add 1/2 teaspoon ginger powder",
			"Add 1/2 teaspoon cinnamon powder",
			"Simmer for 5-7 minutes on low heat",
			"Add honey to taste",
			"Drink warm before bedtime",
		},
		Ingredients: []string{
			"Organic milk (1 cup)",
			"Turmeric powder (1 tsp)",
			"Black pepper (1/4 tsp)",
			"Ginger powder (1/2 tsp)",
			"Cinnamon powder (1/2 tsp)",
			"Honey (to taste)",
		},
		Benefits: []string{
			"Reduces joint inflammation",
			"Improves flexibility",
			"Boosts immunity",
			"Natural pain management",
			"Promotes better sleep",
			"Improves digestion",
		},
	},
	{
		ID:          "3",
		Title:       "Triphala for Digestion",
		Description: "Traditional herbal blend for digestive health and detoxification",
		Category:    "Digestive",
		Instructions: []string{
			"Take 1/2-1 teaspoon Triphala powder",
			"Mix with warm water or honey",
			"Consume before bedtime or early morning",
			"Start with smaller dose and increase gradually",
			"Take on empty stomach for best results",
			"Maintain 2-hour gap from meals",
		},
		Ingredients: []string{
			"Triphala powder",
			"Warm water",
			"Honey (optional)",
		},
		Benefits: []string{
			"Improves digestion",
			"Cleanses digestive tract",
			"Reduces bloating",
			"Supports gut health",
			"Natural detoxification",
			"Promotes regular bowel movements",
		},
	},
	{
		ID:          "4",
		Title:       "Ashwagandha for Stress",
		Description: "Powerful adaptogenic herb for stress relief and mental wellness",
		Category:    "Mental Health",
		Instructions: []string{
			"Take 1/2 teaspoon Ashwagandha powder",
			"Mix with warm milk or water",
			"Add honey if desired",
			"Consume twice daily after meals",
			"Best taken regularly for 2-3 months",
			"Can be combined with other adaptogens",
		},
		Ingredients: []string{
			"Ashwagandha powder",
			"Warm milk or water",
			"Honey (optional)",
		},
		Benefits: []string{
			"Reduces stress and anxiety",
			"Improves sleep quality",
			"Boosts energy levels",
			"Enhances mental clarity",
			"Supports immune system",
			"Balances hormones",
		},
	},
	{
		ID:          "5",
		Title:       "Neem for Skin Health",
		Description: "Natural antibacterial and anti-inflammatory remedy for skin conditions",
		Category:    "Dermatological",
		Instructions: []string{
			"Boil neem leaves in water for 10 minutes",
			"Let it cool and strain",
			"Apply directly to affected areas",
			"Can be used as face wash or bath water",
			"For internal use, take 2-3 neem leaves",
			"Chew fresh leaves or make tea",
		},
		Ingredients: []string{
			"Fresh neem leaves",
			"Water",
			"Neem powder (alternative)",
		},
		Benefits: []string{
			"Treats acne and pimples",
			"Reduces skin inflammation",
			"Natural blood purifier",
			"Antibacterial properties",
			"Improves skin complexion",
			"Treats various skin conditions",
		},
	},
	{
		ID:          "6",
		Title:       "Brahmi for Memory",
		Description: "Cognitive enhancer for better memory and mental performance",
		Category:    "Neurological",
		Instructions: []string{
			"Take 1/2 teaspoon Brahmi powder",
			"Mix with warm water or honey",
			"Consume twice daily after meals",
			"Can be taken with milk at bedtime",
			"Regular use recommended for best results",
			"Avoid on empty stomach",
		},
		Ingredients: []string{
			"Brahmi powder",
			"Warm water or milk",
			"Honey (optional)",
		},
		Benefits: []string{
			"Improves memory",
			"Enhances concentration",
			"Reduces anxiety",
			"Promotes mental clarity",
			"Supports brain health",
			"Reduces stress",
		},
	},
	{
		ID:          "7",
		Title:       "Amla for Immunity",
		Description: "Vitamin C-rich superfood for immune system and overall health",
		Category:    "Immune System",
		Instructions: []string{
			"Take fresh Amla juice (30ml)",
			"Mix with water if needed",
			"Add honey for taste",
			"Consume on empty stomach",
			"Can be taken as powder with honey",
			"Best taken in the morning",
		},
		Ingredients: []string{
			"Fresh Amla or Amla powder",
			"Water",
			"Honey (optional)",
		},
		Benefits: []string{
			"Boosts immunity",
			"Rich in Vitamin C",
			"Improves digestion",
			"Enhances skin health",
			"Promotes hair growth",
			"Anti-aging properties",
		},
	},
	{
		ID:          "8",
		Title:       "Tulsi for Respiratory Health",
		Description: "Sacred herb for respiratory wellness and immunity",
		Category:    "Respiratory",
		Instructions: []string{
			"Boil 5-6 Tulsi leaves in water",
			"Add ginger and black pepper",
			"Steep for 5-10 minutes",
			"Strain and add honey",
			"Drink warm 2-3 times daily",
			"Can be chewed fresh for quick relief",
		},
		Ingredients: []string{
			"Fresh Tulsi leaves",
			"Ginger (optional)",
			"Black pepper",
			"Honey",
			"Water",
		},
		Benefits: []string{
			"Relieves cough and cold",
			"Improves respiratory health",
			"Boosts immunity",
			"Anti-inflammatory properties",
			"Reduces stress",
			"Natural expectorant",
		},
	},
}

var healthTopics = []HealthTopic{
	{
		ID:    "1",
		Title: "Daily Routine (Dinacharya)",
		Points: []string{
			"Wake up before 6 AM",
			"Drink water in the morning",
			"Practice yoga/exercise",
			"Eat meals at proper times",
			"Sleep before 10 PM",
		},
	},
	{
		ID:    "2",
		Title: "Diet Guidelines (Ahara)",
		Points: []string{
			"Eat foods suitable for your constitution",
			"Drink warm water",
			"Take adequate time for meals",
			"Keep dinner light",
			"Avoid excessive oily and fried foods",
		},
	},
	{
		ID:    "3",
		Title: "Seasonal Routine (Ritucharya)",
		Points: []string{
			"Eat foods appropriate for the season",
			"Wear clothes suitable for the season",
			"Adjust lifestyle according to environmental temperature",
			"Protect yourself from seasonal diseases",
			"Take special care during seasonal transitions",
		},
	},
	{
		ID:    "4",
		Title: "Mental Health (Manas Swasthya)",
		Points: []string{
			"Practice meditation",
			"Maintain positive thinking",
			"Get adequate rest",
			"Maintain healthy social relationships",
			"Manage stress effectively",
		},
	},
	{
		ID:    "5",
		Title: "Immunity (Vyadhikshamatva)",
		Points: []string{
			"Use Rasayana herbs (e.g., Ashwagandha)",
			"Proper exercise",
			"Adequate sleep",
			"Consume fruits and vegetables",
			"Include grains in your diet",
		},
	},
	{
		ID:    "6",
		Title: "Lifestyle (Jeevan Shaili)",
		Points: []string{
			"Follow a Sattvic lifestyle",
			"Proper time management",
			"Eco-friendly lifestyle",
			"Balanced meals",
			"Proper rest and work balance",
		},
	},
}
