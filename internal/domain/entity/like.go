// Package entity contains the core business objects of the project.
package entity

import "time"

// Toggle outcomes reported by the like counter engine.
const (
	ActionLike   = "like"
	ActionUnlike = "unlike"
)

// LikeKey identifies one likeable item: a region dimension (mfd), a product
// category, and the item id within that category. Narrower historical
// variants without a dimension are expressed with a fixed mfd, not a
// different key shape.
type LikeKey struct {
	MFD         string `json:"mfd"`
	ProductType int    `json:"product_type"`
	ProductID   string `json:"product_id"`
}

// LikeEvent records that an account currently likes an item. The existence
// of the row is the liked state; there is no boolean column. Unique on
// (AccountID, MFD, ProductType, ProductID).
type LikeEvent struct {
	AccountID int64
	Key       LikeKey
	Timestamp time.Time
}

// LikeCounter holds the aggregate total for one key. The total tracks the
// count of LikeEvent rows sharing the key, tolerating transient divergence
// under concurrent toggles.
type LikeCounter struct {
	Key   LikeKey
	Total int64
}

// LikeResult is the outcome of a toggle or explicit set-status call.
type LikeResult struct {
	Action string `json:"type"`
	Total  int64  `json:"total"`
}

// LikeStatus is the read-path view of one key for one caller.
type LikeStatus struct {
	Key     LikeKey    `json:"key"`
	Total   int64      `json:"total"`
	Liked   bool       `json:"liked"`
	LikedAt *time.Time `json:"timestamp,omitempty"` // When the caller liked the item, if they did.
}
