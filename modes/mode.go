package modes

type Mode int

const (
	ModeDevelopment Mode = iota
	ModeProduction
)
