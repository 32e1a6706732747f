package service

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"marketscan/common/model"
)

var DB *gorm.DB

// Init opens the database, synchronizes the table structure and warms the
// query stats. Must be called once before BlockInsert or the fetch functions.
func Init(dsn string, reset bool) (err error) {
	DB, err = gorm.Open(mysql.Open(dsn+"?charset=utf8mb4&parseTime=True&loc=Local"), &gorm.Config{PrepareStmt: true})
	if err != nil {
		return err
	}
	if reset {
		if err = model.DropTable(DB); err != nil {
			return err
		}
	}
	// compare the table structure in the database with the code and execute DDL
	if err = model.Migrate(DB); err != nil {
		return err
	}
	return initStats(DB)
}
