package services

import "net/http"

// AuthEngine проставляет авторизационные заголовки Ozon Seller API.
type AuthEngine interface {
	SetApiKey(request *http.Request)
}

type ApiKeyAuth struct {
	clientID string
	apiKey   string
}

func NewApiKeyAuth(clientID, apiKey string) *ApiKeyAuth {
	return &ApiKeyAuth{clientID: clientID, apiKey: apiKey}
}

func (a *ApiKeyAuth) SetApiKey(request *http.Request) {
	request.Header.Set("Client-Id", a.clientID)
	request.Header.Set("Api-Key", a.apiKey)
}
