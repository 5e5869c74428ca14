package lighting

import "errors"

var (
	// ErrFrameNotCleared is returned when a frame is scanned twice without Clear.
	ErrFrameNotCleared = errors.New("lighting: frame scanned twice without clear")
	// ErrNotScanned is returned when uploading a frame that was never scanned.
	ErrNotScanned = errors.New("lighting: frame has not been scanned")
	// ErrHookImbalance is returned when layer enter/exit calls do not pair up.
	ErrHookImbalance = errors.New("lighting: unbalanced block layer hooks")
	// ErrLayerRepeated is returned when a layer is drawn twice in one frame.
	ErrLayerRepeated = errors.New("lighting: block layer already drawn this frame")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("lighting: invalid config")
)
