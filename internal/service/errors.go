package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrProtectedQRExpired = errors.New("protected qr code is expired")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
