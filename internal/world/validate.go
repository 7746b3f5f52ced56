package world

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeNoLevels        = "NO_LEVELS"
	CodeNoPlayer        = "NO_PLAYER"
	CodeMultiplePlayers = "MULTIPLE_PLAYERS"
	CodeUnknownKind     = "UNKNOWN_KIND"
	CodeUnknownAvatar   = "UNKNOWN_AVATAR"
	CodeBadLogLength    = "BAD_LOG_LENGTH"
	CodeBadDamping      = "BAD_DAMPING"
)

// ValidateRoster checks a whole roster. Checks:
//   - At least one level
//   - Every level passes ValidateLevel
func ValidateRoster(levels []Level) error {
	if len(levels) == 0 {
		return ValidationError{Code: CodeNoLevels, Message: "roster contains no levels"}
	}
	for i := range levels {
		if err := ValidateLevel(&levels[i]); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLevel checks a single level. Checks:
//   - Exactly one player object
//   - Logs have a positive length
//   - Damping factors lie in [0, 1]
func ValidateLevel(l *Level) error {
	players := 0
	for i, o := range l.Objects {
		switch o.Kind.Kind {
		case KindPlayer:
			players++
		case KindLog:
			if o.Kind.Length <= 0 {
				return ValidationError{
					Code:    CodeBadLogLength,
					Message: fmt.Sprintf("level %d: object %d is a log with length %g", l.Number, i, o.Kind.Length),
				}
			}
		}
	}

	switch {
	case players == 0:
		return ValidationError{
			Code:    CodeNoPlayer,
			Message: fmt.Sprintf("level %d has no player object", l.Number),
		}
	case players > 1:
		return ValidationError{
			Code:    CodeMultiplePlayers,
			Message: fmt.Sprintf("level %d has %d player objects", l.Number, players),
		}
	}

	factors := []struct {
		name string
		v    float64
	}{
		{"bounce_damping", l.Physics.BounceDamping},
		{"friction_damping", l.Physics.FrictionDamping},
		{"collision_damping", l.Physics.CollisionDamping},
	}
	for _, f := range factors {
		if f.v < 0 || f.v > 1 {
			return ValidationError{
				Code:    CodeBadDamping,
				Message: fmt.Sprintf("level %d: %s %g outside [0, 1]", l.Number, f.name, f.v),
			}
		}
	}

	return nil
}
