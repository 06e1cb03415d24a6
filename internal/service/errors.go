package service

import "errors"

var (
	ErrTitleRequired      = errors.New("listing title is required")
	ErrInvalidSalePrice   = errors.New("sale price must be greater than zero")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidAmount      = errors.New("payment amount must be greater than zero")
	ErrInvalidVisitDate   = errors.New("visit date must be in yyyy-mm-dd format")
	ErrInvalidVisitTime   = errors.New("visit time must be in hh:mm format")
	ErrInvalidStatus      = errors.New("unknown status value")
)
