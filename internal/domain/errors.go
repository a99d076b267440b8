package domain

import "errors"

// Hero catalog errors
var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrHeroNotFound = errors.New("hero not found")
)

// Team errors
var (
	ErrTeamNotFound = errors.New("team not found")
	ErrNotTeamOwner = errors.New("only the team owner can perform this action")
)
