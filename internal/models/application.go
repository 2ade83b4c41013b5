package models

// Application statuses. Offer/Accepted count as one outcome in the dashboard
// summary, as do Rejected/Rejection; the stored value is whatever the client
// sent.
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusAccepted  = "Accepted"
	StatusRejected  = "Rejected"
	StatusRejection = "Rejection"
)

// Dates are stored as ISO yyyy-mm-dd strings; sorting and the timeseries
// grouping rely on their lexicographic order.
type Application struct {
	AppID       uint    `gorm:"column:appID;primaryKey;autoIncrement" json:"appID"`
	UserID      uint    `gorm:"column:userID;not null;index" json:"userID"`
	CategoryID  *uint   `gorm:"column:categoryID" json:"categoryID"`
	CompanyID   *uint   `gorm:"column:companyID" json:"companyID"`
	Company     string  `gorm:"column:company;type:text;not null" json:"company"`
	Position    string  `gorm:"column:position;type:text;not null" json:"position"`
	Status      string  `gorm:"column:status;type:text;not null" json:"status"`
	Priority    int     `gorm:"column:priority;not null;default:0" json:"priority"`
	AppliedDate string  `gorm:"column:appliedDate;type:text;not null" json:"appliedDate"`
	Deadline    *string `gorm:"column:deadline;type:text" json:"deadline"`
	Notes       *string `gorm:"column:notes;type:text" json:"notes"`

	Owner        *User     `gorm:"foreignKey:UserID;references:UserID" json:"-"`
	CategoryRef  *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"`
	CompanyRef   *Company  `gorm:"foreignKey:CompanyID;references:CompanyID" json:"-"`
}

func (Application) TableName() string { return "applications" }

// ApplicationRow is the list item shape: application columns plus the joined
// category and company names.
type ApplicationRow struct {
	AppID        uint    `json:"appID"`
	UserID       uint    `json:"userID"`
	CategoryID   *uint   `json:"categoryID"`
	CompanyID    *uint   `json:"companyID"`
	Company      string  `json:"company"`
	Position     string  `json:"position"`
	Status       string  `json:"status"`
	Priority     int     `json:"priority"`
	AppliedDate  string  `json:"appliedDate"`
	Deadline     *string `json:"deadline"`
	Notes        *string `json:"notes"`
	CategoryName *string `json:"categoryName"`
	CompanyName  *string `json:"companyName"`
}

type ApplicationHistory struct {
	HistoryID    uint    `gorm:"column:historyID;primaryKey;autoIncrement" json:"historyID"`
	AppID        uint    `gorm:"column:appID;not null;index" json:"appID"`
	StatusChange string  `gorm:"column:statusChange;type:text;not null" json:"statusChange"`
	Feedback     *string `gorm:"column:feedback;type:text" json:"feedback"`
	UpdateDate   string  `gorm:"column:updateDate;type:text;not null" json:"updateDate"`

	Application *Application `gorm:"foreignKey:AppID;references:AppID" json:"-"`
}

func (ApplicationHistory) TableName() string { return "application_history" }
