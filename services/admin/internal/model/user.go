package model

// User 登录用户表
type User struct {
	LoginID  string `gorm:"column:login_id;primaryKey;size:50" json:"loginId"`
	EmpID    string `gorm:"column:emp_id;size:20;not null" json:"empId"`
	RoleID   string `gorm:"column:role_id;size:2;not null" json:"roleId"`
	Email    string `gorm:"column:email;size:100;not null" json:"email"`
	Password string `gorm:"column:password;size:255;not null" json:"-"`
	Status   string `gorm:"column:status;type:char(1);default:'A'" json:"status"`
	Audit
}

// TableName 表名
func (User) TableName() string {
	return "user_info"
}
