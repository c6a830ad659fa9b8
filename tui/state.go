package tui

type state int

const (
	wizardState state = iota
	exportingState
	errorState
)
