package controller

// ControllerError is a custom error type for controller construction errors
type ControllerError string

// Error implements the error interface
func (e ControllerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig ControllerError = "config cannot be nil"
	ErrNilRoller ControllerError = "roller cannot be nil"
	ErrNilReader ControllerError = "reader cannot be nil"
	ErrNilWriter ControllerError = "writer cannot be nil"
)
