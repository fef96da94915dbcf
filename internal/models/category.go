package models

// Category groups transactions for the dashboard breakdown. Transactions
// reference it by name, not id; renaming a category does not cascade.
type Category struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"userId"`
	Name   string `gorm:"size:64;not null" json:"name"`
	Color  string `gorm:"size:16;not null" json:"color"`
}
