package model

// Menu 菜单表
// menu_id/parent_id 为短字符串编码，历史数据中 "01" 与 "1" 混用，
// 所有匹配都必须走归一化比较
type Menu struct {
	MenuID          string `gorm:"column:menu_id;primaryKey;size:2" json:"menuId"`
	MenuName        string `gorm:"column:menu_name;size:50" json:"menuName"`
	ParentID        string `gorm:"column:parent_id;size:2" json:"parentId"` // "0" 或空表示根
	IsParents       string `gorm:"column:is_parents;type:char(1);default:'N'" json:"isParents"`
	URL             string `gorm:"column:url;size:255" json:"url"` // "#" 表示非真实链接
	MenuOrder       int    `gorm:"column:menu_order" json:"menuOrder"`
	FontAwesomeIcon string `gorm:"column:font_awesome_icon;size:50" json:"fontAwesomeIcon"`
	FAwesomeIconCSS string `gorm:"column:f_awesome_icon_css;size:100" json:"fAwesomeIconCss"`
	ActiveFlag      string `gorm:"column:active_flag;type:char(1);default:'Y'" json:"activeFlag"`
	Status          string `gorm:"column:status;size:20;default:'active'" json:"status"`
	Audit
}

// TableName 表名
func (Menu) TableName() string {
	return "menus"
}

// Right 角色菜单权限表，(role_id, menu_id) 联合主键
type Right struct {
	RoleID       string `gorm:"column:role_id;primaryKey;size:2" json:"roleId"`
	MenuID       string `gorm:"column:menu_id;primaryKey;size:2" json:"menuId"`
	CreatePermit string `gorm:"column:create_permit;type:char(1);default:'N'" json:"createPermit"`
	ViewPermit   string `gorm:"column:view_permit;type:char(1);default:'N'" json:"viewPermit"`
	EditPermit   string `gorm:"column:edit_permit;type:char(1);default:'N'" json:"editPermit"`
	DeletePermit string `gorm:"column:delete_permit;type:char(1);default:'N'" json:"deletePermit"`
	Status       string `gorm:"column:status;size:20;default:'active'" json:"status"`
	Audit
}

// TableName 表名
func (Right) TableName() string {
	return "rights"
}

// Role 角色表
type Role struct {
	RoleID   string `gorm:"column:role_id;primaryKey;size:2" json:"roleId"`
	RoleName string `gorm:"column:role_name;size:50;not null" json:"roleName"`
	Status   string `gorm:"column:status;size:20;default:'active'" json:"status"`
	Audit
}

// TableName 表名
func (Role) TableName() string {
	return "roles"
}
