package game

type StateHash uint64

// Board is the read-only view of a game at one point in time. Every
// GameState is a Board; observers only ever receive this view.
type Board interface {
	Setup() Setup
	// Players returns the fugitive followed by the trackers in turn order.
	Players() []Piece
	// Remaining returns the pieces still owed a move this round.
	Remaining() []Piece
	// TrackerLocation returns false if piece is not a tracker of this game.
	TrackerLocation(piece Piece) (int, bool)
	// PlayerTickets returns false if piece does not play in this game.
	PlayerTickets(piece Piece) (TicketBoard, bool)
	TravelLog() []LogEntry
	LegalMoves() []Move
	// Winner is empty while the game is undecided.
	Winner() []Piece
	Hash() StateHash
}
