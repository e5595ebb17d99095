// Package content 站点内容维护，项目/轮播图/奖项/客户评价/访客留言
package content

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/adminboard/pkg/dal"
	"github.com/adminboard/pkg/errors"
	"github.com/adminboard/pkg/middleware"
	"github.com/adminboard/pkg/router"
	"github.com/adminboard/services/admin/internal/model"
)

// Controllers 站点内容的全部控制器
func Controllers(db *gorm.DB) []router.Registrar {
	return []router.Registrar{
		projectController(db),
		bannerController(db),
		awardController(db),
		testimonialController(db),
		feedbackController(db),
	}
}

// yesNo 发布标志归一化，库里存 "Yes"/"No"
func yesNo(raw, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y":
		return "Yes"
	case "no", "n":
		return "No"
	default:
		return fallback
	}
}

func projectController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.ProjectInfo]{
		RoutePrefix:  "/admin/projects",
		Resource:     "project",
		KeyColumn:    "id",
		NumericKey:   true,
		SearchFields: []string{"slug", "title", "location", "status"},
		DefaultOrder: "id DESC",
		Hooks: dal.CrudHooks[model.ProjectInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.ProjectInfo) error {
				if e.Slug == "" || e.Title == "" {
					return errors.BadRequest("slug and title are required")
				}
				if e.Status == "" {
					e.Status = "ongoing"
				}
				if e.Ptype == "" {
					e.Ptype = "residential"
				}
				if e.SpecsJSON == "" {
					e.SpecsJSON = "{}"
				}
				e.Published = yesNo(e.Published, "Yes")
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.ProjectInfo) error {
				e.Published = yesNo(e.Published, "Yes")
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}

func bannerController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.BannerInfo]{
		RoutePrefix:  "/admin/banners",
		Resource:     "banner",
		KeyColumn:    "id",
		NumericKey:   true,
		SearchFields: []string{"headline", "subhead"},
		DefaultOrder: "sort_order, id",
		Hooks: dal.CrudHooks[model.BannerInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.BannerInfo) error {
				if e.ImageURL == "" {
					return errors.BadRequest("imageUrl is required")
				}
				e.Published = yesNo(e.Published, "Yes")
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.BannerInfo) error {
				e.Published = yesNo(e.Published, "Yes")
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}

func awardController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.AwardInfo]{
		RoutePrefix:  "/admin/awards",
		Resource:     "award",
		KeyColumn:    "id",
		NumericKey:   true,
		SearchFields: []string{"title", "issuer"},
		DefaultOrder: "displaying_order, id",
		Hooks: dal.CrudHooks[model.AwardInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.AwardInfo) error {
				if e.Title == "" {
					return errors.BadRequest("title is required")
				}
				e.Published = yesNo(e.Published, "No")
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.AwardInfo) error {
				e.Published = yesNo(e.Published, "No")
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}

func testimonialController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.TestimonialInfo]{
		RoutePrefix:  "/admin/testimonials",
		Resource:     "testimonial",
		KeyColumn:    "id",
		NumericKey:   true,
		SearchFields: []string{"name", "project_title", "role"},
		DefaultOrder: "sort_order, id",
		Hooks: dal.CrudHooks[model.TestimonialInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.TestimonialInfo) error {
				if e.Name == "" || e.Quote == "" {
					return errors.BadRequest("name and quote are required")
				}
				e.Published = yesNo(e.Published, "Yes")
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.TestimonialInfo) error {
				e.Published = yesNo(e.Published, "Yes")
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}

func feedbackController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.Feedback]{
		RoutePrefix:  "/admin/feedback",
		Resource:     "feedback",
		KeyColumn:    "id",
		NumericKey:   true,
		SearchFields: []string{"name", "phone", "email"},
		DefaultOrder: "created_at DESC",
		Hooks: dal.CrudHooks[model.Feedback]{
			BeforeCreate: func(c *fiber.Ctx, e *model.Feedback) error {
				if e.Name == "" || e.Phone == "" {
					return errors.BadRequest("name and phone are required")
				}
				return nil
			},
		},
	})
}
