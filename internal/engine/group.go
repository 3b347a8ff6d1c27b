package engine

import "github.com/Cesliva/steelnest/internal/model"

// pieceGroup holds the pieces for a single material identity.
type pieceGroup struct {
	key    model.GroupKey
	pieces []model.Piece
}

// groupPieces partitions pieces into nest-compatible groups. Missing identity
// fields are normalized so pieces lacking identity still group together.
// Groups come back in first-occurrence order, not map order, so the result is
// reproducible run to run.
func groupPieces(pieces []model.Piece) []pieceGroup {
	index := make(map[model.GroupKey]int)
	var groups []pieceGroup
	for _, p := range pieces {
		key := model.KeyForPiece(p)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, pieceGroup{key: key})
		}
		groups[i].pieces = append(groups[i].pieces, p)
	}
	return groups
}
