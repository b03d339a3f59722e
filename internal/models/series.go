package models

// RevenuePoint is one month of the revenue series. Points are seeded in
// chronological order and never mutated individually.
type RevenuePoint struct {
	ID      uint64  `gorm:"primarykey" json:"id"`
	Month   string  `gorm:"type:varchar(20);not null" json:"month"`
	Revenue float64 `gorm:"not null" json:"revenue"`
}

// GrowthPoint is one month of the user-growth series.
type GrowthPoint struct {
	ID         uint64 `gorm:"primarykey" json:"id"`
	Month      string `gorm:"type:varchar(20);not null" json:"month"`
	Users      int    `gorm:"not null" json:"users"`
	NewClients int    `gorm:"not null" json:"new_clients"`
}
