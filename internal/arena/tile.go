package arena

// Tile is the logical content of one grid cell. A cell holds exactly one
// tile type at any instant.
type Tile int

const (
	TileEmpty          Tile = iota
	TileIndestructible      // Border and pillar walls
	TileBreakable           // Destroyed by explosions
	TileBomb                // An armed bomb occupies the cell
	TileExplosion           // A live explosion covers the cell
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileIndestructible:
		return "Indestructible"
	case TileBreakable:
		return "Breakable"
	case TileBomb:
		return "Bomb"
	case TileExplosion:
		return "Explosion"
	default:
		return "Unknown"
	}
}

// IsWall reports whether the tile is either kind of wall.
func (t Tile) IsWall() bool {
	return t == TileIndestructible || t == TileBreakable
}
