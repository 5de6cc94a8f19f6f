package responses

type LogicValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type LogicPreview struct {
	Preview string `json:"preview"`
}

type CandidateQuestion struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Type     string `json:"type"`
	Position int    `json:"position"`
}
