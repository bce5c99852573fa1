package domain

// Product carries no timestamps, unlike the rest of the catalog tables.
type Product struct {
	ID               uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string `json:"name" gorm:"size:255;not null"`
	Slug             string `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	SmallImage       string `json:"small_image" gorm:"size:255;not null"`
	BigImage         string `json:"big_image" gorm:"size:255;not null"`
	Features         string `json:"features" gorm:"size:500;not null"`
	Price            string `json:"price" gorm:"size:20;not null"`
	Description      string `json:"description" gorm:"type:text;not null"`
	ShortDescription string `json:"short_description" gorm:"type:text;not null"`
	CategoryID       uint64 `json:"category_id" gorm:"not null;index"`
}

func (Product) TableName() string { return "products" }
