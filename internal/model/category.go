package model

type Category struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description *string `gorm:"type:text" json:"description"`

	Products []Product `json:"products,omitempty"`
}
