package db_models

type Testimonial struct {
	BaseModel
	CustomerName string `gorm:"size:120"`
	Category     string `gorm:"size:64;index"`
	Country      string `gorm:"size:2;index"`
	Quote        string `gorm:"type:text"`
	Rating       int
	PhotoURL     string
	Published    bool `gorm:"index"`
	SortOrder    int
}

// Transformation is a before/after pair shown on the retouching gallery.
type Transformation struct {
	BaseModel
	Title     string `gorm:"size:160"`
	Category  string `gorm:"size:64;index"`
	BeforeURL string
	AfterURL  string
	Caption   string `gorm:"type:text"`
	Published bool   `gorm:"index"`
	SortOrder int
}
