package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&Event{},
		&Attendance{},
	)
}

// DropTables removes all three tables. Only used for fresh-start
// initialization, never exposed to clients.
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&Attendance{},
		&Event{},
		&Account{},
	)
}
