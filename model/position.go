package model

import "errors"

// Position is one of the five canonical role buckets that drive both the
// draft formation and the roster display.
type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_GK      Position = "goalkeeper"
	POS_DEF     Position = "defender"
	POS_MID     Position = "midfielder"
	POS_AM      Position = "attacking_midfielder"
	POS_PIV     Position = "pivot"
)

var ErrUnknownRole = errors.New("unknown role label")

// roleBuckets maps every role label offered in the roster form to its
// canonical bucket. Several labels funnel into the same bucket, e.g. both
// full-back labels are defenders. This is configuration data, not logic.
var roleBuckets = map[string]Position{
	"Goleiro":          POS_GK,
	"Zagueiro":         POS_DEF,
	"Lateral Direito":  POS_DEF,
	"Lateral Esquerdo": POS_DEF,
	"Volante":          POS_MID,
	"Meio-campo":       POS_MID,
	"Meia-atacante":    POS_AM,
	"Ponta Direita":    POS_AM,
	"Ponta Esquerda":   POS_AM,
	"Centroavante":     POS_PIV,
	"Pivo":             POS_PIV,
}

// RoleLabels lists the labels accepted by ClassifyRole, in the order they
// are presented in the roster form.
var RoleLabels = []string{
	"Goleiro",
	"Zagueiro",
	"Lateral Direito",
	"Lateral Esquerdo",
	"Volante",
	"Meio-campo",
	"Meia-atacante",
	"Ponta Direita",
	"Ponta Esquerda",
	"Centroavante",
	"Pivo",
}

// ClassifyRole maps a roster role label to its canonical bucket. The label
// set is closed - the roster form only offers labels from RoleLabels - so an
// unknown label is an error, not a fallback bucket.
func ClassifyRole(label string) (Position, error) {
	pos, ok := roleBuckets[label]
	if !ok {
		return POS_UNKNOWN, ErrUnknownRole
	}
	return pos, nil
}

// ParsePosition parses a canonical bucket name, as stored in the database.
func ParsePosition(s string) Position {
	switch Position(s) {
	case POS_GK, POS_DEF, POS_MID, POS_AM, POS_PIV:
		return Position(s)
	default:
		return POS_UNKNOWN
	}
}

// Formation is the fixed number of players each drafted team needs per
// bucket: 1 goalkeeper, 2 defenders, 1 midfielder, 2 attacking midfielders
// and 1 pivot, 7 players in total. This constant is part of the draft
// contract, not a tunable.
var Formation = map[Position]int{
	POS_GK:  1,
	POS_DEF: 2,
	POS_MID: 1,
	POS_AM:  2,
	POS_PIV: 1,
}

// FormationSize is the total number of players in a full team.
const FormationSize = 7

// DraftBuckets is the canonical iteration order for the five buckets.
var DraftBuckets = []Position{POS_GK, POS_DEF, POS_MID, POS_AM, POS_PIV}
