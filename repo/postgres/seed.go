package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/wiki_service/models/entities"
)

// DefaultLevels 默认等级表
var DefaultLevels = []entities.Level{
	{Level: 1, Name: "Novato", Insignia: "🌱", MinPoints: 0, Benefits: "Puede publicar herramientas y reseñas"},
	{Level: 2, Name: "Explorador", Insignia: "🧭", MinPoints: 100, Benefits: "Insignia visible en el ranking"},
	{Level: 3, Name: "Contribuidor", Insignia: "🛠️", MinPoints: 300, Benefits: "Acceso a medallas exclusivas"},
	{Level: 4, Name: "Experto", Insignia: "🎓", MinPoints: 700, Benefits: "Reseñas destacadas"},
	{Level: 5, Name: "Maestro", Insignia: "🏅", MinPoints: 1500, Benefits: "Perfil destacado en la portada"},
	{Level: 6, Name: "Leyenda", Insignia: "👑", MinPoints: 3000, Benefits: "Reconocimiento permanente de la comunidad"},
}

// DefaultCategories 初始分类
var DefaultCategories = []entities.Category{
	{Name: "Texto y Escritura", Slug: "texto", Description: "Asistentes de redacción y chatbots", Icon: "✍️", Color: "#6366f1", SortOrder: 1, IsActive: true},
	{Name: "Imagen", Slug: "imagen", Description: "Generación y edición de imágenes", Icon: "🎨", Color: "#ec4899", SortOrder: 2, IsActive: true},
	{Name: "Audio y Voz", Slug: "audio", Description: "Síntesis de voz, música y transcripción", Icon: "🎧", Color: "#f59e0b", SortOrder: 3, IsActive: true},
	{Name: "Video", Slug: "video", Description: "Creación y edición de video", Icon: "🎬", Color: "#ef4444", SortOrder: 4, IsActive: true},
	{Name: "Programación", Slug: "programacion", Description: "Asistentes de código y desarrollo", Icon: "💻", Color: "#10b981", SortOrder: 5, IsActive: true},
	{Name: "Productividad", Slug: "productividad", Description: "Automatización y organización", Icon: "⚡", Color: "#0ea5e9", SortOrder: 6, IsActive: true},
}

// DefaultBadges 初始勋章
var DefaultBadges = []entities.Badge{
	{Name: "Primer Paso", Description: "Tu primera medalla en Wiki IA", Cost: 50, IsActive: true},
	{Name: "Crítico", Description: "Para quienes comparten su opinión", Cost: 150, IsActive: true},
	{Name: "Curador", Description: "Reconoce a los que publican buenas herramientas", Cost: 400, IsActive: true},
	{Name: "Visionario", Description: "Medalla reservada a los más activos", Cost: 1000, IsActive: true},
}

// SeedReferenceData 幂等地写入等级、分类和勋章，已存在的记录保持不变
func SeedReferenceData(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		levels := append([]entities.Level(nil), DefaultLevels...)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&levels).Error; err != nil {
			return fmt.Errorf("写入默认等级失败: %w", err)
		}
		categories := append([]entities.Category(nil), DefaultCategories...)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
			return fmt.Errorf("写入默认分类失败: %w", err)
		}
		badges := append([]entities.Badge(nil), DefaultBadges...)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&badges).Error; err != nil {
			return fmt.Errorf("写入默认勋章失败: %w", err)
		}
		return nil
	})
}
