package catalog

// ScholarshipInput is the gov-managed scholarship payload.
type ScholarshipInput struct {
	Name        string `json:"name" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Eligibility string `json:"eligibility" validate:"required"`
	Link        string `json:"link" validate:"required,url"`
}

// TrendingCourseInput is the gov-managed trending course payload.
type TrendingCourseInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
}
