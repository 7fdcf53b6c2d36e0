package response_models

type TestimonialResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Category     string `json:"category"`
	Country      string `json:"country,omitempty"`
	Quote        string `json:"quote"`
	Rating       int    `json:"rating"`
	PhotoURL     string `json:"photoUrl,omitempty"`
}

type TransformationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	BeforeURL string `json:"beforeUrl"`
	AfterURL  string `json:"afterUrl"`
	Caption   string `json:"caption,omitempty"`
}

type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}
