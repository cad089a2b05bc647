// Package model 定义数据库实体模型
package model

import "time"

// User 用户资料
// 对应数据库 users 表，由外部用户系统维护，本服务只读
type User struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	FullName    string    `gorm:"column:full_name;type:varchar(100);not null;comment:姓名"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(20);not null;comment:电话"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
