// Package testdb 为各层测试提供基于内存 SQLite 的 gorm 连接和常用数据构造函数。
package testdb

import (
	"testing"

	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// DSN 内存库并开启外键约束，与 Postgres 的约束行为保持一致
const DSN = "file::memory:?_pragma=foreign_keys(1)"

// New 打开一个独立的内存数据库并完成迁移。
// 连接池限制为 1，保证同一个测试内的所有查询看到同一个内存库。
func New(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(entities.AllModels()...))
	return db
}

// SeedLevels 写入一组简单的等级: 1(0) 2(100) 3(300)
func SeedLevels(t *testing.T, db *gorm.DB) {
	t.Helper()
	levels := []entities.Level{
		{Level: 1, Name: "Novato", MinPoints: 0},
		{Level: 2, Name: "Explorador", MinPoints: 100},
		{Level: 3, Name: "Contribuidor", MinPoints: 300},
	}
	require.NoError(t, db.Create(&levels).Error)
}

// User 创建一个启用的普通用户
func User(t *testing.T, db *gorm.DB, username string, points int64) *entities.User {
	t.Helper()
	u := &entities.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         "user",
		Points:       points,
		Level:        1,
		IsActive:     true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// Category 创建一个启用的分类
func Category(t *testing.T, db *gorm.DB, slug string, sortOrder int) *entities.Category {
	t.Helper()
	c := &entities.Category{Name: slug, Slug: slug, SortOrder: sortOrder, IsActive: true}
	require.NoError(t, db.Create(c).Error)
	return c
}

// Listing 创建一个指定状态的工具
func Listing(t *testing.T, db *gorm.DB, name string, categoryID, authorID uint64, status enums.Status) *entities.Listing {
	t.Helper()
	l := &entities.Listing{
		Name:        name,
		Description: name + " description",
		URL:         "https://example.com/" + name,
		CategoryID:  categoryID,
		AuthorID:    authorID,
		Status:      status,
		IsActive:    true,
	}
	require.NoError(t, db.Create(l).Error)
	return l
}
