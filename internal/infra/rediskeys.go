package infra

import "fmt"

const (
	// RedisNamespace Базовый префикс для изоляции данных проекта в Redis
	RedisNamespace = "predictaflow"
)

// SnapshotKey - опубликованный каталог наборов за день генерации.
func SnapshotKey(day string) string {
	return fmt.Sprintf("%s:snapshot:%s", RedisNamespace, day)
}

// SnapshotLockKey - блокировка публикации (SetNX), чтобы каталог писал один инстанс.
func SnapshotLockKey(day string) string {
	return fmt.Sprintf("%s:lock:snapshot:%s", RedisNamespace, day)
}
