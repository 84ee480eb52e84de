package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type RefRepository struct {
	db *gorm.DB
}

func NewRefRepository(db *gorm.DB) *RefRepository {
	return &RefRepository{db: db}
}

// Next 取下一个业务单号。计数器按前缀独立存储，自增发生在调用方的
// 事务内，并发请求由行锁串行化，不会产生重复单号。
func (r *RefRepository) Next(tx *gorm.DB, prefix string) (string, error) {
	var value int64
	err := tx.Raw(`
		INSERT INTO ops_ref_sequences (prefix, value) VALUES (?, 1)
		ON CONFLICT (prefix) DO UPDATE SET value = ops_ref_sequences.value + 1
		RETURNING value
	`, prefix).Scan(&value).Error
	if err != nil {
		return "", fmt.Errorf("failed to advance %s sequence: %w", prefix, err)
	}
	return FormatRef(prefix, value), nil
}

// FormatRef 展示用单号：前缀 + 8位补零序号
func FormatRef(prefix string, value int64) string {
	return fmt.Sprintf("%s-%08d", prefix, value%100000000)
}
