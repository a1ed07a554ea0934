package dto

type ProfileLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type ProfileEntry struct {
	Title   string   `json:"title"`
	Place   string   `json:"place"`
	Period  string   `json:"period"`
	Details []string `json:"details"`
}

type ProfileSkillGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Profile is the author page, loaded from a JSON file.
type Profile struct {
	Name       string              `json:"name"`
	Headline   string              `json:"headline"`
	Location   string              `json:"location"`
	Summary    string              `json:"summary"`
	Links      []ProfileLink       `json:"links"`
	Skills     []ProfileSkillGroup `json:"skills"`
	Education  []ProfileEntry      `json:"education"`
	Experience []ProfileEntry      `json:"experience"`
}

type InputFeature struct {
	Field       string   `json:"field"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"`
}

type ModelInfo struct {
	Source    string   `json:"source"`
	Algorithm string   `json:"algorithm"`
	Features  []string `json:"features"`
}

type IntroductionResponse struct {
	Title    string         `json:"title"`
	Summary  string         `json:"summary"`
	Features []InputFeature `json:"features"`
	Model    ModelInfo      `json:"model"`
}
