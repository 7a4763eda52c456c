package board

// Team represents the side a piece belongs to.
type Team uint8

const (
	White Team = iota
	Black
)

// Other returns the opposing team.
func (t Team) Other() Team {
	return t ^ 1
}

// String returns the team name.
func (t Team) String() string {
	switch t {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoTeam"
	}
}

// Forward returns the row step a pawn of this team advances by.
// White starts at the bottom of the window (rows 6 and 7) and moves up.
func (t Team) Forward() int {
	if t == White {
		return -1
	}
	return 1
}

// PawnRow returns the row this team's pawns start on.
func (t Team) PawnRow() int {
	if t == White {
		return 6
	}
	return 1
}

// BackRow returns the row this team's major pieces start on.
func (t Team) BackRow() int {
	if t == White {
		return 7
	}
	return 0
}

// Kind represents the type of a chess piece.
// The zero value NoKind marks an empty cell.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// Kinds lists every real piece kind in declaration order.
var Kinds = [...]Kind{Pawn, Rook, Knight, Bishop, Queen, King}

// String returns the kind name in lower case, matching sprite asset names.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Char returns the FEN letter for the kind (lowercase).
func (k Kind) Char() byte {
	chars := []byte{' ', 'p', 'r', 'n', 'b', 'q', 'k'}
	if k > King {
		return ' '
	}
	return chars[k]
}

// kindValue is the material value per kind, indexed by Kind.
var kindValue = [...]int{0, 1, 5, 3, 3, 9, 100}

// Value returns the material value of the kind.
func (k Kind) Value() int {
	if k > King {
		return 0
	}
	return kindValue[k]
}

// Piece is the content of one board cell.
// Team and Kind identify the piece; HasMoved is the only field that changes.
type Piece struct {
	Team     Team
	Kind     Kind
	HasMoved bool
}

// NoPiece is the content of an empty cell.
var NoPiece = Piece{}

// NewPiece creates an unmoved piece.
func NewPiece(t Team, k Kind) Piece {
	return Piece{Team: t, Kind: k}
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return p.Kind.Value()
}

// Name returns "<team>_<kind>", e.g. "white_pawn".
func (p Piece) Name() string {
	if p.IsEmpty() {
		return ""
	}
	if p.Team == White {
		return "white_" + p.Kind.String()
	}
	return "black_" + p.Kind.String()
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black, "." for an empty cell.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	c := p.Kind.Char()
	if p.Team == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to an unmoved Piece.
func PieceFromChar(c byte) (Piece, bool) {
	team := Black
	if c >= 'A' && c <= 'Z' {
		team = White
		c += 'a' - 'A'
	}
	for _, k := range Kinds {
		if k.Char() == c {
			return NewPiece(team, k), true
		}
	}
	return NoPiece, false
}
