package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// PubSubClient Redis Pub/Sub 客户端封装
type PubSubClient struct {
	rdb *redis.Client
}

// NewPubSubClient 创建 Pub/Sub 客户端，支持密码认证
func NewPubSubClient(addr, password string, db int) (*PubSubClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &PubSubClient{rdb: rdb}, nil
}

// Publish 向指定 channel 发布消息
func (c *PubSubClient) Publish(ctx context.Context, channel string, message string) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}

// Listen 持续订阅 channel，每条消息回调 handle，直到 ctx 结束或 handle 返回错误
func (c *PubSubClient) Listen(ctx context.Context, channel string, handle func(payload string) error) error {
	sub := c.rdb.Subscribe(ctx, channel)
	defer sub.Close()

	// 等待订阅确认，连接问题在这里暴露
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := handle(msg.Payload); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close 关闭连接
func (c *PubSubClient) Close() error {
	return c.rdb.Close()
}
