package handlers

// AnalyzeRequest — тело POST /analyze.
type AnalyzeRequest struct {
	CountryCode string `json:"countryCode"`
	Query       string `json:"query"`
}

// FollowUpRequest — тело POST /ai/follow-up.
type FollowUpRequest struct {
	CountryCode string `json:"countryCode"`
	Question    string `json:"question"`
}

// P3Request — тело POST /p3/{countryCode}.
type P3Request struct {
	Query string `json:"query"`
}
