package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix = "post:%d"
	PostsListKey  = "posts:all"
	MoodKeyPrefix = "mood:%s"
)

const (
	PostTTL      = 30 * time.Minute
	PostsListTTL = 5 * time.Minute
	// MoodTTL is the store-level lifetime of a mood record. Expiry is
	// enforced by Redis itself; the application never deletes moods.
	MoodTTL = 24 * time.Hour
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func MoodKey(user string) string {
	return fmt.Sprintf(MoodKeyPrefix, user)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PostsListKey)
}

func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, PostsListKey)
}
