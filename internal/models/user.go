package models

type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleManagement Role = "Management"
	RoleRegular    Role = "Regular"
	RoleControl    Role = "Control"
)

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManagement, RoleRegular, RoleControl:
		return true
	}
	return false
}

// Capability tags carried in users.userTypes as a comma-separated list.
const (
	TypeJobSeeker = "JobSeeker"
	TypeAnalyst   = "Analyst"
)

type User struct {
	UserID       uint    `gorm:"column:userID;primaryKey;autoIncrement" json:"userID"`
	Name         string  `gorm:"column:name;type:text;not null" json:"name"`
	Username     *string `gorm:"column:username;type:text" json:"username,omitempty"`
	Nickname     *string `gorm:"column:nickname;type:text" json:"nickname"`
	Email        string  `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string  `gorm:"column:passwordHash;type:text;not null" json:"-"`
	Role         Role    `gorm:"column:role;type:text;not null" json:"role"`
	UserTypes    *string `gorm:"column:userTypes;type:text" json:"userTypes"`
}

func (User) TableName() string { return "users" }
