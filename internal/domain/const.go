package domain

const (
	// DEFAULT_IMAGE_PROMPT is used when a caller does not supply a prompt
	DEFAULT_IMAGE_PROMPT = "make a hyper realistics image of a racing car for a NFT"

	// Response messages returned by the mint endpoints
	RACE_MINTED_MESSAGE        = "NFT minted successfully!"
	ACHIEVEMENT_MINTED_MESSAGE = "Achievement NFT minted successfully!"

	// TOKEN_DATA_PROPERTY_KEY is the token property holding the JSON-encoded token data
	TOKEN_DATA_PROPERTY_KEY = "tokenData"
	// TOKEN_DATA_PROPERTY_INDEX is where tokenData sits when properties are unkeyed
	TOKEN_DATA_PROPERTY_INDEX = 2
)

// Reasons reported for tokens left out of a listing
const (
	SKIP_REASON_FETCH_FAILED         = "fetch_failed"
	SKIP_REASON_TOKEN_DATA_MISSING   = "token_data_missing"
	SKIP_REASON_TOKEN_DATA_MALFORMED = "token_data_malformed"
)
