package db

import (
	"gorm.io/gorm"

	centerrepo "github.com/claon/claon-admin/internal/data/repos/center"
	types "github.com/claon/claon-admin/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.User{},

		// Center aggregate: the center row keeps its value-object
		// collections in serialized columns.
		&centerrepo.Record{},
		&types.CenterHold{},
		&types.CenterWall{},
		&types.CenterApprovedFile{},

		&types.Post{},
		&types.ClimbingHistory{},

		&types.Review{},
		&types.ReviewTag{},
		&types.ReviewAnswer{},

		&types.Schedule{},
	)
}
