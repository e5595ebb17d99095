package rights

// UpsertRequest 权限行新增或更新请求
type UpsertRequest struct {
	RoleID       string `json:"roleId"`
	MenuID       string `json:"menuId"`
	CreatePermit string `json:"createPermit"`
	ViewPermit   string `json:"viewPermit"`
	EditPermit   string `json:"editPermit"`
	DeletePermit string `json:"deletePermit"`
	Status       string `json:"status"`
}

// MatrixRow 权限矩阵一行，菜单信息加该角色的四项许可
type MatrixRow struct {
	MenuID       string `json:"menuId"`
	MenuName     string `json:"menuName"`
	ParentID     string `json:"parentId"`
	URL          string `json:"url"`
	MenuOrder    int    `json:"menuOrder"`
	CreatePermit string `json:"createPermit"`
	ViewPermit   string `json:"viewPermit"`
	EditPermit   string `json:"editPermit"`
	DeletePermit string `json:"deletePermit"`
	Assigned     bool   `json:"assigned"`
}
