package models

// Doctor - врач, доступный для записи. Справочная сущность:
// жизненного цикла нет, записи читаются публично.
type Doctor struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Designation string `gorm:"not null" json:"designation"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Phone       string `gorm:"not null" json:"phone"`
	Image       string `json:"image"`
	Chamber     string `json:"chamber"`
	Hospital    string `json:"hospital"`
}
