package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// IsDuplicateKeyError 判定 MySQL 唯一键冲突（错误码 1062）
func IsDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
