package apperror

import "errors"

var (
	ErrGameFinished = errors.New("round is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
)

// IsRejectedMove reports whether err is a rejected move: the board stays as it
// was and the caller should render "nothing happened". An invalid cell index
// is not a rejected move, it is a caller bug.
func IsRejectedMove(err error) bool {
	return errors.Is(err, ErrGameFinished) || errors.Is(err, ErrCellOccupied)
}
