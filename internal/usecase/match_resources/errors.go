package match_resources

import "errors"

var (
	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("match_resources: invalid window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("match_resources: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("match_resources: internal error")
)
