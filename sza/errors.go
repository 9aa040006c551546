package sza

import "github.com/pkg/errors"

// Sentinel errors returned (wrapped, with context) by the decoder and the
// scaler. Discriminate with errors.Is.
var (
	// ErrMissingDescriptor means the archive carries no animation.txt, or
	// an animation.txt with no lines in it.
	ErrMissingDescriptor = errors.New("sza: missing animation.txt descriptor")

	// ErrMalformedDescriptorLine means a descriptor line does not follow
	// the NAME (TIMEms) format.
	ErrMalformedDescriptorLine = errors.New("sza: malformed descriptor line")

	// ErrMissingReferencedImage means the descriptor names an image entry
	// that is not present in the archive.
	ErrMissingReferencedImage = errors.New("sza: descriptor references missing image")

	// ErrImageDecode means an archive entry other than the descriptor
	// could not be decoded as an image.
	ErrImageDecode = errors.New("sza: could not decode image entry")

	// ErrInvalidDuration means a descriptor line carries a zero or
	// negative duration.
	ErrInvalidDuration = errors.New("sza: frame duration must be positive")

	// ErrInvalidScaleFactor means Scaled was asked for a zero or negative
	// scale factor.
	ErrInvalidScaleFactor = errors.New("sza: scale factor must be positive")

	// ErrStream means the archive stream itself could not be read or is
	// not a zip file.
	ErrStream = errors.New("sza: error reading animation archive")
)
