package models

import (
	"catalog-backend/utils"
	"strings"
	"time"

	"gorm.io/gorm"
)

type RoleName string

const (
	RoleAdmin RoleName = "ADMIN"
	RoleUser  RoleName = "USER"
)

// NormalizeRoleName upper-cases and trims a role name so stored roles compare
// exactly.
func NormalizeRoleName(name RoleName) RoleName {
	return RoleName(strings.ToUpper(strings.TrimSpace(string(name))))
}

// CanManageCatalog reports whether the role may create, update or delete
// services and service details. Rows written before names were normalized may
// still be mixed case, so the comparison ignores case.
func (n RoleName) CanManageCatalog() bool {
	return strings.EqualFold(strings.TrimSpace(string(n)), string(RoleAdmin))
}

type Role struct {
	ID           uint         `gorm:"primaryKey"`
	Name         RoleName     `gorm:"type:varchar(30);uniqueIndex;not null"`
	DeleteStatus DeleteStatus `gorm:"type:smallint;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Role) BeforeSave(tx *gorm.DB) (err error) {
	r.Name = NormalizeRoleName(r.Name)
	return
}

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null"`
	Phone    string

	RoleID uint  `gorm:"index;not null"`
	Role   *Role `gorm:"foreignKey:RoleID"`

	Enabled      bool         `gorm:"not null"`
	DeleteStatus DeleteStatus `gorm:"type:smallint;not null"`
	LastLogin    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Hash the password before the first insert
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// IsUsable reports whether the account may act at all: disabled or deleted
// users are treated as if they did not exist.
func (u *User) IsUsable() bool {
	return u.Enabled && u.DeleteStatus.IsActive()
}

// CanManageCatalog is false for users without a loaded role.
func (u *User) CanManageCatalog() bool {
	return u.Role != nil && u.Role.Name.CanManageCatalog()
}
