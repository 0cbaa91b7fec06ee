package game

import "errors"

var (
	ErrInvalidWidth = errors.New("invalid grid width")
	ErrInvalidSpawn = errors.New("invalid spawn index")
	ErrNilRand      = errors.New("nil random source")
	ErrGameStarted  = errors.New("game already started")
)
