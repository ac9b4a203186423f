package content

// Remedy is a curated home remedy entry. The catalog is editorial content
// shipped with the binary; there is no write path.
type Remedy struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Instructions []string `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
	Benefits     []string `json:"benefits"`
}

// HealthTopic is one section of the lifestyle guidance page.
type HealthTopic struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Points []string `json:"points"`
}
