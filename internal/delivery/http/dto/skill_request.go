package dto

type ExtractSkillsRequest struct {
	Text string `json:"text" validate:"required"`
}

type ExtractSkillsResponse struct {
	Skills     []string            `json:"skills"`
	ByCategory map[string][]string `json:"by_category"`
	Count      int                 `json:"count"`
}
