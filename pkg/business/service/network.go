package service

import (
	"errors"
	"net"
	"syscall"
)

type ErrorKind int

const (
	ErrorTimeout ErrorKind = iota
	ErrorConnection
	ErrorOther
)

// ClassifyError различает таймаут, сетевую ошибку и все остальное.
// Верхний уровень печатает по ней итоговое сообщение прогона.
func ClassifyError(err error) ErrorKind {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrorConnection
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return ErrorConnection
	}
	return ErrorOther
}
