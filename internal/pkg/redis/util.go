package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetValue 获取字符串类型的值
func GetValue(ctx context.Context, key string) (string, error) {
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetInt64 获取整型计数值，键不存在视为 0
func GetInt64(ctx context.Context, key string) (int64, error) {
	value, err := Rdb.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return value, nil
}

// Incr 计数自增
func Incr(ctx context.Context, key string) (int64, error) {
	return Rdb.Incr(ctx, key).Result()
}

// GetDelInt64 原子取出并删除计数值，用于增量回写
func GetDelInt64(ctx context.Context, key string) (int64, error) {
	value, err := Rdb.GetDel(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return value, nil
}

// SAdd 向集合添加成员，返回是否为新成员
func SAdd(ctx context.Context, key string, member string) (bool, error) {
	added, err := Rdb.SAdd(ctx, key, member).Result()
	if err != nil {
		return false, err
	}
	return added > 0, nil
}

// SAddWithExpiration 向集合添加成员并刷新过期时间，返回是否为新成员
func SAddWithExpiration(ctx context.Context, key string, member string, expiration time.Duration) (bool, error) {
	pipe := Rdb.TxPipeline()
	addCmd := pipe.SAdd(ctx, key, member)
	pipe.Expire(ctx, key, expiration)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return addCmd.Val() > 0, nil
}

// GetSet 获取集合
func GetSet(ctx context.Context, key string) ([]string, error) {
	value, err := Rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return value, nil
}

// TryLock 获取分布式锁，retryTimes 为失败后的重试次数，-1 表示无限重试
func TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error) {
	for i := 0; i <= retryTimes || retryTimes == -1; i++ {
		success, err := Rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if success {
			return true, nil
		}
		time.Sleep(time.Millisecond * 200)
	}
	return false, nil
}

// UnLock 释放锁
func UnLock(ctx context.Context, key string, value interface{}) {
	Rdb.Eval(ctx, "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end", []string{key}, value)
}

func Rename(ctx context.Context, oldKey string, newKey string) error {
	return Rdb.Rename(ctx, oldKey, newKey).Err()
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}
