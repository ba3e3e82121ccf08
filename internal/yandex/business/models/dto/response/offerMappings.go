package response

type Paging struct {
	NextPageToken string `json:"nextPageToken"`
}

type Offer struct {
	ShopSku string `json:"shopSku"`
	Name    string `json:"name"`
}

type OfferMappingEntry struct {
	Offer Offer `json:"offer"`
}

type OfferMappingResult struct {
	Paging              Paging              `json:"paging"`
	OfferMappingEntries []OfferMappingEntry `json:"offerMappingEntries"`
}

// OfferMappings -- ответ GET campaigns/{id}/offer-mapping-entries.
type OfferMappings struct {
	Result OfferMappingResult `json:"result"`
}
