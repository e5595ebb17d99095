package menu

// CreateRequest 新建菜单请求
type CreateRequest struct {
	MenuID          string `json:"menuId"`
	MenuName        string `json:"menuName"`
	ParentID        string `json:"parentId"`
	IsParents       string `json:"isParents"`
	URL             string `json:"url"`
	MenuOrder       int    `json:"menuOrder"`
	FontAwesomeIcon string `json:"fontAwesomeIcon"`
	FAwesomeIconCSS string `json:"fAwesomeIconCss"`
	ActiveFlag      string `json:"activeFlag"`
	Status          string `json:"status"`
}

// UpdateRequest 更新菜单请求
type UpdateRequest struct {
	MenuName        string `json:"menuName"`
	ParentID        string `json:"parentId"`
	IsParents       string `json:"isParents"`
	URL             string `json:"url"`
	MenuOrder       int    `json:"menuOrder"`
	FontAwesomeIcon string `json:"fontAwesomeIcon"`
	FAwesomeIconCSS string `json:"fAwesomeIconCss"`
	ActiveFlag      string `json:"activeFlag"`
	Status          string `json:"status"`
}

// SidebarResponse 当前角色的侧边栏
type SidebarResponse struct {
	Flat interface{} `json:"flat"`
	Tree interface{} `json:"tree"`
}
