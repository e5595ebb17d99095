package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adminboard/pkg/dal"
	"github.com/adminboard/pkg/utils"
	"github.com/adminboard/services/admin/internal/model"
)

var (
	// ErrInvalidCredentials 账号或密码不对
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrUserDisabled 账号被停用
	ErrUserDisabled = errors.New("user is disabled")
	// ErrInvalidEmail 邮箱格式不对
	ErrInvalidEmail = errors.New("invalid email address")
)

// Repository 用户仓储
type Repository struct {
	*dal.BaseRepository[model.User]
	db *gorm.DB
}

// NewRepository 创建用户仓储
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		BaseRepository: dal.NewBaseRepository[model.User](db),
		db:             db,
	}
}

// Get 按登录ID查用户，未找到返回 nil, nil
func (r *Repository) Get(ctx context.Context, loginID string) (*model.User, error) {
	return r.FindOne(ctx, map[string]interface{}{"login_id": loginID})
}

// List 分页查询用户
func (r *Repository) List(ctx context.Context, q string, p *dal.Pagination) (*dal.PagedResult[model.User], error) {
	p.Normalize()

	db := r.db.WithContext(ctx).Model(&model.User{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + q + "%"
		db = db.Where("login_id LIKE ? OR emp_id LIKE ? OR email LIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	var users []model.User
	if err := db.Order("login_id").Offset(p.Offset()).Limit(p.PageSize).Find(&users).Error; err != nil {
		return nil, err
	}
	return dal.NewPagedResult(users, total, p), nil
}

// Authenticate 校验登录凭据，密码比对用bcrypt
func (r *Repository) Authenticate(ctx context.Context, loginID, password string) (*model.User, error) {
	u, err := r.Get(ctx, strings.TrimSpace(loginID))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if strings.ToUpper(strings.TrimSpace(u.Status)) != "A" {
		return nil, ErrUserDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// CreateUser 新建用户，密码落库前bcrypt哈希
func (r *Repository) CreateUser(ctx context.Context, u *model.User, plainPassword, by string) error {
	u.Email = strings.TrimSpace(u.Email)
	if u.Email != "" && !utils.IsEmail(u.Email) {
		return ErrInvalidEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	if u.Status == "" {
		u.Status = "A"
	}
	u.CreatedBy = by
	u.UpdatedBy = by
	return r.db.WithContext(ctx).Create(u).Error
}

// UpdateUser 更新用户基本信息，不碰密码
func (r *Repository) UpdateUser(ctx context.Context, u *model.User, by string) error {
	u.Email = strings.TrimSpace(u.Email)
	if u.Email != "" && !utils.IsEmail(u.Email) {
		return ErrInvalidEmail
	}
	u.UpdatedBy = by
	return r.db.WithContext(ctx).Save(u).Error
}

// ChangePassword 校验旧密码后换新密码
func (r *Repository) ChangePassword(ctx context.Context, loginID, oldPassword, newPassword string) error {
	u, err := r.Authenticate(ctx, loginID, oldPassword)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("login_id = ?", u.LoginID).
		Update("password", string(hash)).Error
}

// DeleteUser 删除用户
func (r *Repository) DeleteUser(ctx context.Context, loginID string) error {
	return r.db.WithContext(ctx).Where("login_id = ?", loginID).Delete(&model.User{}).Error
}
