package user

import "github.com/adminboard/pkg/auth"

// LoginRequest 登录请求
type LoginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token *auth.TokenInfo `json:"token"`
	User  *Profile        `json:"user"`
}

// Profile 用户信息，永不带密码
type Profile struct {
	LoginID string `json:"loginId"`
	EmpID   string `json:"empId"`
	RoleID  string `json:"roleId"`
	Email   string `json:"email"`
	Status  string `json:"status"`
}

// CreateRequest 新建用户请求
type CreateRequest struct {
	LoginID  string `json:"loginId"`
	EmpID    string `json:"empId"`
	RoleID   string `json:"roleId"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

// UpdateRequest 更新用户请求，密码单独走修改密码接口
type UpdateRequest struct {
	EmpID  string `json:"empId"`
	RoleID string `json:"roleId"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
