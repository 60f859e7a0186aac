package unique

import (
	"encoding/json"

	"github.com/feral-file/ff-race-nft/internal/domain"
)

// MintRequest describes a token to mint
type MintRequest struct {
	CollectionID uint64
	Owner        string
	ImageURL     string
	Attributes   []domain.Attribute
}

// CollectionRequest describes a collection to create
type CollectionRequest struct {
	Name          string
	Description   string
	Symbol        string
	CoverImageURL string
}

// Property is a single token property as returned by the REST API
type Property struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	ValueHex string `json:"valueHex,omitempty"`
}

// Token is a token with its properties
type Token struct {
	CollectionID uint64     `json:"collectionId"`
	TokenID      uint64     `json:"tokenId"`
	Properties   []Property `json:"properties"`
}

// AccountToken is a token reference held by an account
type AccountToken struct {
	CollectionID uint64 `json:"collectionId"`
	TokenID      uint64 `json:"tokenId"`
}

type accountTokensResponse struct {
	Tokens []AccountToken `json:"tokens"`
}

// signerPayloadRaw is the raw payload to be signed
type signerPayloadRaw struct {
	Address string `json:"address"`
	Data    string `json:"data"`
	Type    string `json:"type"`
}

// unsignedTxResponse is returned by every ?use=Build call
type unsignedTxResponse struct {
	SignerPayloadJSON json.RawMessage  `json:"signerPayloadJSON"`
	SignerPayloadRaw  signerPayloadRaw `json:"signerPayloadRaw"`
	SignerPayloadHex  string           `json:"signerPayloadHex"`
}

type submitTxRequest struct {
	SignerPayloadJSON json.RawMessage `json:"signerPayloadJSON"`
	Signature         string          `json:"signature"`
	SignatureType     string          `json:"signatureType"`
}

type submitTxResponse struct {
	Hash string `json:"hash"`
}

type extrinsicError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type extrinsicParsed struct {
	CollectionID uint64 `json:"collectionId"`
	TokenID      uint64 `json:"tokenId"`
	Owner        string `json:"owner"`
}

type extrinsicStatusResponse struct {
	Status      string           `json:"status"`
	IsCompleted bool             `json:"isCompleted"`
	IsError     bool             `json:"isError"`
	BlockHash   string           `json:"blockHash"`
	Error       *extrinsicError  `json:"error"`
	Parsed      *extrinsicParsed `json:"parsed"`
}

type createTokenBody struct {
	Address      string             `json:"address"`
	CollectionID uint64             `json:"collectionId"`
	Owner        string             `json:"owner"`
	Image        string             `json:"image"`
	Attributes   []domain.Attribute `json:"attributes"`
}

type coverImage struct {
	URL string `json:"url"`
}

type nestingPermissions struct {
	CollectionAdmin bool `json:"collectionAdmin"`
}

type collectionPermissions struct {
	Nesting nestingPermissions `json:"nesting"`
}

type propertyPermission struct {
	Mutable         bool `json:"mutable"`
	CollectionAdmin bool `json:"collectionAdmin"`
	TokenOwner      bool `json:"tokenOwner"`
}

type tokenPropertyPermission struct {
	Key        string             `json:"key"`
	Permission propertyPermission `json:"permission"`
}

type encodeOptions struct {
	OverwriteTPPs []tokenPropertyPermission `json:"overwriteTPPs"`
}

type createCollectionBody struct {
	Address                  string                    `json:"address"`
	Name                     string                    `json:"name"`
	Description              string                    `json:"description"`
	Symbol                   string                    `json:"symbol"`
	CoverImage               coverImage                `json:"cover_image"`
	Permissions              collectionPermissions     `json:"permissions"`
	EncodeOptions            encodeOptions             `json:"encodeOptions"`
	Schema                   collectionSchema          `json:"schema"`
	TokenPropertyPermissions []tokenPropertyPermission `json:"tokenPropertyPermissions"`
}
