package response

type ProductListItem struct {
	ProductID int64  `json:"product_id"`
	OfferID   string `json:"offer_id"`
}

type ProductListResult struct {
	Items  []ProductListItem `json:"items"`
	Total  int               `json:"total"`
	LastID string            `json:"last_id"`
}

type ProductList struct {
	Result ProductListResult `json:"result"`
}
