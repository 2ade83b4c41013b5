package models

type Reminder struct {
	ReminderID   uint   `gorm:"column:reminderID;primaryKey;autoIncrement" json:"reminderID"`
	UserID       uint   `gorm:"column:userID;not null;index" json:"userID"`
	AppID        *uint  `gorm:"column:appID;index" json:"appID"`
	Message      string `gorm:"column:message;type:text;not null" json:"message"`
	ReminderDate string `gorm:"column:reminderDate;type:text;not null" json:"reminderDate"`

	Owner       *User        `gorm:"foreignKey:UserID;references:UserID" json:"-"`
	Application *Application `gorm:"foreignKey:AppID;references:AppID" json:"-"`
}

func (Reminder) TableName() string { return "reminders" }
