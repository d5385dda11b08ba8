package entity

type CafeTable struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	CafeID string `gorm:"index;not null" json:"cafeId"`

	Number   string `json:"number"` // label shown on the floor plan, e.g. "T3"
	Seats    int    `json:"seats"`
	Position string `json:"position"` // Window, Center, Corner, Private
}
