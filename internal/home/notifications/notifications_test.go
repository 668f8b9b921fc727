package notifications_test

import (
	"testing"

	"github.com/LeHPhuc/GymApp/internal/home/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed(t *testing.T) {
	items := notifications.Feed()
	require.Len(t, items, 3)
	assert.Equal(t, "Lịch tập với PT vào lúc 18:00 hôm nay", items[0].Message)
	assert.False(t, items[0].Read)
	assert.Equal(t, 1, notifications.UnreadCount(items))
}

func TestFeed_ReturnsCopy(t *testing.T) {
	items := notifications.Feed()
	items[0].Read = true
	assert.Equal(t, 1, notifications.UnreadCount(notifications.Feed()))
}

func TestUnreadCount(t *testing.T) {
	assert.Zero(t, notifications.UnreadCount(nil))
	assert.Equal(t, 2, notifications.UnreadCount([]notifications.Item{
		{Read: false}, {Read: true}, {Read: false},
	}))
}
