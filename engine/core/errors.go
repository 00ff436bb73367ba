package core

import (
	"errors"
)

var (
	ErrOutOfDeviceMemory    = errors.New("out of device memory")
	ErrMappingNotSupported  = errors.New("memory is not host accessible, mapping not supported")
	ErrMemoryTargetMismatch = errors.New("memory already bound to a buffer with a different target")
	ErrInvalidView          = errors.New("invalid image view")
	ErrInvalidAttachment    = errors.New("invalid attachment reference")
	ErrUnknownBindingKind   = errors.New("unknown binding kind")
	ErrUnsupportedRenderer  = errors.New("renderer type not supported")
	ErrNoContext            = errors.New("no current GL context")
)
