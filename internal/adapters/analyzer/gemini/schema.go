package gemini

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *responseSchema `json:"responseSchema,omitempty"`
}

type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties,omitempty"`
	Items      *responseSchema           `json:"items,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

type schemaProperty struct {
	Type  string          `json:"type"`
	Enum  []string        `json:"enum,omitempty"`
	Items *responseSchema `json:"items,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	if len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	return r.Candidates[0].Content.Parts[0].Text
}

// analysisPayload is the JSON object the model is constrained to emit via
// the response schema.
type analysisPayload struct {
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	SuggestedPrice int      `json:"suggestedPrice"`
	Difficulty     string   `json:"difficulty"`
	Tags           []string `json:"tags"`
}

func analysisResponseSchema() *responseSchema {
	return &responseSchema{
		Type: "OBJECT",
		Properties: map[string]schemaProperty{
			"title":          {Type: "STRING"},
			"summary":        {Type: "STRING"},
			"suggestedPrice": {Type: "INTEGER"},
			"difficulty":     {Type: "STRING", Enum: []string{"Easy", "Medium", "Hard", "Expert"}},
			"tags":           {Type: "ARRAY", Items: &responseSchema{Type: "STRING"}},
		},
		Required: []string{"title", "summary", "suggestedPrice", "difficulty", "tags"},
	}
}
