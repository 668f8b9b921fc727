// Package notifications serves the dashboard notification feed. The
// upstream API has no notification endpoint yet, so the feed is a
// fixed in-memory list.
// TODO: replace with the real endpoint once the backend ships one.
package notifications

// Item is one feed entry.
type Item struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Read    bool   `json:"read"`
}

var feed = []Item{
	{
		ID:      "1",
		Message: "Lịch tập với PT vào lúc 18:00 hôm nay",
		Time:    "2 giờ trước",
		Read:    false,
	},
	{
		ID:      "2",
		Message: "Gói tập của bạn sẽ hết hạn trong 7 ngày",
		Time:    "1 ngày trước",
		Read:    true,
	},
	{
		ID:      "3",
		Message: "Khuyến mãi đặc biệt: Giảm 20% gói tập 1 năm",
		Time:    "3 ngày trước",
		Read:    true,
	},
}

// Feed returns a copy of the feed so callers cannot mutate it.
func Feed() []Item {
	items := make([]Item, len(feed))
	copy(items, feed)
	return items
}

// UnreadCount counts unread items, shown as the badge number.
func UnreadCount(items []Item) int {
	count := 0
	for _, item := range items {
		if !item.Read {
			count++
		}
	}
	return count
}
