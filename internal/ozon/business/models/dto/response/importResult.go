package response

type ImportError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ImportResultItem struct {
	ProductID int64         `json:"product_id"`
	OfferID   string        `json:"offer_id"`
	Updated   bool          `json:"updated"`
	Errors    []ImportError `json:"errors"`
}

type ImportResult struct {
	Result []ImportResultItem `json:"result"`
}
