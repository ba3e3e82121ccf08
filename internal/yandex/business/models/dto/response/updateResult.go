package response

// UpdateResult -- ответ методов обновления. Маркет отвечает статусом OK,
// детали ошибок приходят в errors.
type UpdateResult struct {
	Status string `json:"status"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}
