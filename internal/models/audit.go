package models

// AuditLogEntry is append-only; rows are written on every mutating operation
// and only ever read back by the admin listing.
type AuditLogEntry struct {
	LogID     uint   `gorm:"column:logID;primaryKey;autoIncrement" json:"logID"`
	UserID    uint   `gorm:"column:userID;not null;index" json:"userID"`
	Action    string `gorm:"column:action;type:text;not null" json:"action"`
	Timestamp string `gorm:"column:timestamp;type:text;not null" json:"timestamp"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (AuditLogEntry) TableName() string { return "audit_log" }

// AuditRow is the admin listing shape with the actor's name and email joined.
type AuditRow struct {
	LogID     uint   `json:"logID"`
	UserID    uint   `json:"userID"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}
