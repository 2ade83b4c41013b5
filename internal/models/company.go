package models

type Company struct {
	CompanyID uint    `gorm:"column:companyID;primaryKey;autoIncrement" json:"companyID"`
	Name      string  `gorm:"column:name;type:text;not null" json:"name"`
	Industry  *string `gorm:"column:industry;type:text" json:"industry"`
	Location  *string `gorm:"column:location;type:text" json:"location"`
}

func (Company) TableName() string { return "companies" }
