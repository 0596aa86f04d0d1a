package web

import "errors"

var (
	ErrInvalidRoute     = errors.New("web: invalid route")
	ErrDuplicateRoute   = errors.New("web: duplicate route")
	ErrTemplateNotFound = errors.New("web: template not found")
)
