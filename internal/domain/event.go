package domain

import "time"

// MintEvent announces a freshly minted token
type MintEvent struct {
	EventID      string         `json:"event_id"`
	Kind         CollectionKind `json:"kind"`
	CollectionID uint64         `json:"collection_id"`
	TokenID      uint64         `json:"token_id"`
	Owner        string         `json:"owner"`
	ImageCID     string         `json:"image_cid"`
	ImageURL     string         `json:"image_url"`
	MintedAt     time.Time      `json:"minted_at"`
}
