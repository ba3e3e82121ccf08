package services

import "net/http"

// AuthEngine проставляет авторизационные заголовки Market Partner API.
type AuthEngine interface {
	SetApiKey(request *http.Request)
}

type BearerAuth struct {
	token string
}

func NewBearerAuth(token string) *BearerAuth {
	return &BearerAuth{token: token}
}

func (a *BearerAuth) SetApiKey(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+a.token)
}
