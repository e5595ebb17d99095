package model

import "time"

// GroupInfo 集团表，组织层级的顶层
type GroupInfo struct {
	GroupID      string `gorm:"column:group_id;primaryKey;size:10" json:"groupId"`
	GroupName    string `gorm:"column:group_name;size:150;not null" json:"groupName"`
	GroupAddress string `gorm:"column:group_address;type:text" json:"groupAddress"`
	GroupLogo    string `gorm:"column:group_logo;size:255" json:"groupLogo"`
	Status       string `gorm:"column:status;size:20;default:'active'" json:"status"`
	Audit
}

// TableName 表名
func (GroupInfo) TableName() string {
	return "group_info"
}

// OrgInfo 公司表，隶属集团
type OrgInfo struct {
	OrgID      string `gorm:"column:org_id;primaryKey;size:12" json:"orgId"`
	GroupID    string `gorm:"column:group_id;size:10;not null" json:"groupId"`
	OrgName    string `gorm:"column:org_name;size:150;not null" json:"orgName"`
	OrgAddress string `gorm:"column:org_address;type:text" json:"orgAddress"`
	OrgLogo    string `gorm:"column:org_logo;size:255" json:"orgLogo"`
	Status     string `gorm:"column:status;size:20;default:'active'" json:"status"`
	Audit
}

// TableName 表名
func (OrgInfo) TableName() string {
	return "org_info"
}

// ZoneInfo 区域表，隶属公司
type ZoneInfo struct {
	ZoneID      string `gorm:"column:zone_id;primaryKey;size:12" json:"zoneId"`
	OrgID       string `gorm:"column:org_id;size:12;not null" json:"orgId"`
	ZoneName    string `gorm:"column:zone_name;size:150;not null" json:"zoneName"`
	ZoneAddress string `gorm:"column:zone_address;type:text" json:"zoneAddress"`
	Status      string `gorm:"column:status;size:20;default:'active'" json:"status"`
	Audit
}

// TableName 表名
func (ZoneInfo) TableName() string {
	return "zone_info"
}

// BranchInfo 网点表，br_id 形如 1101001
type BranchInfo struct {
	BrID      string `gorm:"column:br_id;primaryKey;size:7" json:"brId"`
	ZoneID    string `gorm:"column:zone_id;size:12;not null" json:"zoneId"`
	BrName    string `gorm:"column:br_name;size:150;not null" json:"brName"`
	BrAddress string `gorm:"column:br_address;type:text" json:"brAddress"`
	Status    string `gorm:"column:status;size:20;default:'active'" json:"status"`
	Audit
}

// TableName 表名
func (BranchInfo) TableName() string {
	return "br_info"
}

// DesigInfo 职务表
type DesigInfo struct {
	DesigID   string `gorm:"column:desig_id;primaryKey;size:2" json:"desigId"`
	DesigName string `gorm:"column:desig_name;size:50;not null" json:"desigName"`
	Status    string `gorm:"column:status;size:20;default:'active'" json:"status"`
	Audit
}

// TableName 表名
func (DesigInfo) TableName() string {
	return "desig_info"
}

// EmpInfo 员工表
type EmpInfo struct {
	EmpID          string     `gorm:"column:emp_id;primaryKey;size:6" json:"empId"`
	EmpName        string     `gorm:"column:emp_name;size:100;not null" json:"empName"`
	Gender         string     `gorm:"column:gender;size:10" json:"gender"`
	Dob            *time.Time `gorm:"column:dob;type:date" json:"dob"`
	Mobile         string     `gorm:"column:mobile;size:20" json:"mobile"`
	Email          string     `gorm:"column:email;size:80" json:"email"`
	JoinDate       *time.Time `gorm:"column:join_date;type:date" json:"joinDate"`
	DesigID        string     `gorm:"column:desig_id;size:2" json:"desigId"`
	BrID           string     `gorm:"column:br_id;size:7" json:"brId"`
	ZoneID         string     `gorm:"column:zone_id;size:4" json:"zoneId"`
	OrgID          string     `gorm:"column:org_id;size:4" json:"orgId"`
	GroupID        string     `gorm:"column:group_id;size:4" json:"groupId"`
	NID            string     `gorm:"column:nid;size:20" json:"nid"`
	BloodGroup     string     `gorm:"column:blood_group;size:5" json:"bloodGroup"`
	Address        string     `gorm:"column:address;type:text" json:"address"`
	EmergencyPhone string     `gorm:"column:emergency_phone;size:20" json:"emergencyPhone"`
	PhotoURL       string     `gorm:"column:photo_url;size:255" json:"photoUrl"`
	EmpType        string     `gorm:"column:emp_type;size:20;default:'Contractual'" json:"empType"`
	Bio            string     `gorm:"column:bio;type:text" json:"bio"`
	LinkedinURL    string     `gorm:"column:linkedin_url;size:300" json:"linkedinUrl"`
	SortOrder      int        `gorm:"column:sort_order" json:"sortOrder"`
	BioDetails     string     `gorm:"column:bio_details;type:text" json:"bioDetails"`
	Status         string     `gorm:"column:status;size:20;default:'active'" json:"status"`
	Audit
}

// TableName 表名
func (EmpInfo) TableName() string {
	return "emp_info"
}
