package domain

import "errors"

var (
	// ErrImageGenerationFailed is returned when the image provider produced no image
	ErrImageGenerationFailed = errors.New("image generation failed")

	// ErrLocationNotFound is returned when geocoding yields no result
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidPinResponse is returned when the pinning service response carries no usable CID
	ErrInvalidPinResponse = errors.New("invalid pin response")

	// ErrNotAnImage is returned when downloaded content is not an image
	ErrNotAnImage = errors.New("content is not an image")

	// ErrPayloadTooLarge is returned when a download exceeds the configured size limit
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrTokenDataMissing is returned when a token carries no token data property
	ErrTokenDataMissing = errors.New("token data missing")

	// ErrTokenDataMalformed is returned when the token data property is not valid JSON
	ErrTokenDataMalformed = errors.New("token data malformed")

	// ErrExtrinsicFailed is returned when the ledger reports a failed extrinsic
	ErrExtrinsicFailed = errors.New("extrinsic failed")

	// ErrInvalidCollectionKind is returned for an unknown collection kind
	ErrInvalidCollectionKind = errors.New("invalid collection kind")
)
