package model

// Workplace represents the database model for desks. The composite unique
// index lets two locations each have a desk with the same number.
type Workplace struct {
	ID       uint64 `gorm:"primaryKey"`
	Number   int    `gorm:"not null;uniqueIndex:idx_workplaces_number_location"`
	Location string `gorm:"size:100;not null;uniqueIndex:idx_workplaces_number_location"`
}

// TableName specifies the table name for Workplace
func (Workplace) TableName() string {
	return "workplaces"
}
