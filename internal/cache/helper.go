package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	InternshipKeyPrefix = "internship:%d"
	ProfileKeyPrefix    = "profile:user:%d"
)

const (
	InternshipTTL = 10 * time.Minute
	ProfileTTL    = 5 * time.Minute
)

func InternshipKey(internshipID uint) string {
	return fmt.Sprintf(InternshipKeyPrefix, internshipID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateInternship(ctx context.Context, internshipID uint) {
	Invalidate(ctx, InternshipKey(internshipID))
}

func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
}
