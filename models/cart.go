package models

// CartItem is one line of an unsubmitted cart: a product and the quantity
// the user wants. Product IDs are unique within a shift's cart.
type CartItem struct {
	ProductID int `json:"idProdotto"`
	Quantity  int `json:"quantita"`
}

// CartLine is the durable form of a CartItem, persisted in the local store
// so a cart survives a restart. Lines are scoped by owner and shift.
type CartLine struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Owner     string `gorm:"not null;index:idx_cart_owner_turno" json:"owner"`
	Turno     int    `gorm:"not null;index:idx_cart_owner_turno" json:"turno"`
	ProductID int    `gorm:"not null" json:"product_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// TableName specifies the table name for the CartLine model
func (CartLine) TableName() string {
	return "cart_lines"
}

// Preference is a single persisted key/value setting, such as the
// currently selected shift.
type Preference struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// TableName specifies the table name for the Preference model
func (Preference) TableName() string {
	return "preferences"
}
