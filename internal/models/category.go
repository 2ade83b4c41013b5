package models

type Category struct {
	CategoryID  uint    `gorm:"column:categoryID;primaryKey;autoIncrement" json:"categoryID"`
	Name        string  `gorm:"column:name;type:text;not null" json:"name"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	ManagerID   uint    `gorm:"column:managerID;not null" json:"managerID"`

	Manager *User `gorm:"foreignKey:ManagerID;references:UserID" json:"-"`
}

func (Category) TableName() string { return "categories" }

// CategoryWithManager is the listing row shape: category columns plus the
// manager's display name joined from users.
type CategoryWithManager struct {
	CategoryID  uint    `json:"categoryID"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ManagerID   uint    `json:"managerID"`
	ManagerName string  `json:"managerName"`
}
