package entity

const (
	CartItemCrop    = "crop"
	CartItemProduct = "product"
)

// CartItem denormalizes price/name/seller at add time; lines are keyed by
// (ItemID, ItemType) within a user's cart.
type CartItem struct {
	ItemID     string  `json:"item_id"`
	ItemType   string  `json:"item_type"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	SellerName string  `json:"seller_name"`
	Image      string  `json:"image,omitempty"`
}

type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}
