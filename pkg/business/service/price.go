package service

import (
	"regexp"
	"strings"
)

type IPriceService interface {
	ConvertPrice(input string) string
}

type PriceService struct{}

func NewPriceService() *PriceService {
	return &PriceService{}
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ConvertPrice приводит цену из прайса поставщика к целочисленной строке.
// Дробная часть и валюта отбрасываются: "5'990.00 руб." -> "5990"
func (ps *PriceService) ConvertPrice(input string) string {
	whole, _, _ := strings.Cut(input, ".")
	return nonDigits.ReplaceAllString(whole, "")
}
