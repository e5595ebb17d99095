// Package org 组织架构维护，集团/公司/区域/网点/职务/员工全部走通用CRUD
package org

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/adminboard/pkg/dal"
	"github.com/adminboard/pkg/errors"
	"github.com/adminboard/pkg/middleware"
	"github.com/adminboard/pkg/router"
	"github.com/adminboard/services/admin/internal/model"
)

// Controllers 组织架构的全部控制器
func Controllers(db *gorm.DB) []router.Registrar {
	return []router.Registrar{
		groupController(db),
		orgController(db),
		zoneController(db),
		branchController(db),
		desigController(db),
		empController(db),
	}
}

func groupController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.GroupInfo]{
		RoutePrefix:  "/admin/org/groups",
		Resource:     "group",
		KeyColumn:    "group_id",
		SearchFields: []string{"group_id", "group_name"},
		DefaultOrder: "group_id",
		Hooks: dal.CrudHooks[model.GroupInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.GroupInfo) error {
				if e.GroupID == "" || e.GroupName == "" {
					return errors.BadRequest("groupId and groupName are required")
				}
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.GroupInfo) error {
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}

func orgController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.OrgInfo]{
		RoutePrefix:  "/admin/org/orgs",
		Resource:     "organization",
		KeyColumn:    "org_id",
		SearchFields: []string{"org_id", "org_name", "group_id"},
		DefaultOrder: "org_id",
		Hooks: dal.CrudHooks[model.OrgInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.OrgInfo) error {
				if e.OrgID == "" || e.OrgName == "" || e.GroupID == "" {
					return errors.BadRequest("orgId, orgName and groupId are required")
				}
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.OrgInfo) error {
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}

func zoneController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.ZoneInfo]{
		RoutePrefix:  "/admin/org/zones",
		Resource:     "zone",
		KeyColumn:    "zone_id",
		SearchFields: []string{"zone_id", "zone_name", "org_id"},
		DefaultOrder: "zone_id",
		Hooks: dal.CrudHooks[model.ZoneInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.ZoneInfo) error {
				if e.ZoneID == "" || e.ZoneName == "" || e.OrgID == "" {
					return errors.BadRequest("zoneId, zoneName and orgId are required")
				}
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.ZoneInfo) error {
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}

func branchController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.BranchInfo]{
		RoutePrefix:  "/admin/org/branches",
		Resource:     "branch",
		KeyColumn:    "br_id",
		SearchFields: []string{"br_id", "br_name", "zone_id"},
		DefaultOrder: "br_id",
		Hooks: dal.CrudHooks[model.BranchInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.BranchInfo) error {
				if e.BrID == "" || e.BrName == "" || e.ZoneID == "" {
					return errors.BadRequest("brId, brName and zoneId are required")
				}
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.BranchInfo) error {
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}

func desigController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.DesigInfo]{
		RoutePrefix:  "/admin/org/designations",
		Resource:     "designation",
		KeyColumn:    "desig_id",
		SearchFields: []string{"desig_id", "desig_name"},
		DefaultOrder: "desig_id",
		Hooks: dal.CrudHooks[model.DesigInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.DesigInfo) error {
				if e.DesigID == "" || e.DesigName == "" {
					return errors.BadRequest("desigId and desigName are required")
				}
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.DesigInfo) error {
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}

func empController(db *gorm.DB) router.Registrar {
	return dal.NewCrudController(db, dal.CrudConfig[model.EmpInfo]{
		RoutePrefix:  "/admin/org/employees",
		Resource:     "employee",
		KeyColumn:    "emp_id",
		SearchFields: []string{"emp_id", "emp_name", "email", "mobile", "br_id"},
		DefaultOrder: "emp_id",
		Hooks: dal.CrudHooks[model.EmpInfo]{
			BeforeCreate: func(c *fiber.Ctx, e *model.EmpInfo) error {
				if e.EmpID == "" || e.EmpName == "" {
					return errors.BadRequest("empId and empName are required")
				}
				e.CreatedBy = middleware.GetLoginID(c)
				e.UpdatedBy = e.CreatedBy
				return nil
			},
			BeforeUpdate: func(c *fiber.Ctx, e *model.EmpInfo) error {
				e.UpdatedBy = middleware.GetLoginID(c)
				return nil
			},
		},
	})
}
