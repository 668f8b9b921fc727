package schedule_test

import (
	"testing"
	"time"

	"github.com/LeHPhuc/GymApp/internal/gymapi"
	"github.com/LeHPhuc/GymApp/internal/home/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// today used across the selection tests, mid-day so the midnight floor matters
var testNow = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func TestSelectUpcoming_SoonestFutureWins(t *testing.T) {
	records := []gymapi.SessionRecord{
		{ID: 1, SessionDate: "2024-05-09", StartTime: "18:00:00", Status: "confirmed"},
		{ID: 2, SessionDate: "2024-05-12", StartTime: "18:00:00", Status: "pending"},
		{ID: 3, SessionDate: "2024-05-01", StartTime: "18:00:00", Status: "cancelled"},
	}

	selected, ordered := schedule.SelectUpcoming(records, testNow)
	require.NotNil(t, selected)
	assert.Equal(t, 2, selected.Record.ID)
	// cancelled and past entries are not in the future list
	require.Len(t, ordered, 1)
}

func TestSelectUpcoming_FallsBackToMostRecentPast(t *testing.T) {
	records := []gymapi.SessionRecord{
		{ID: 1, SessionDate: "2024-01-01", StartTime: "18:00:00", Status: "completed"},
		{ID: 2, SessionDate: "2024-03-01", StartTime: "18:00:00", Status: "completed"},
	}

	selected, ordered := schedule.SelectUpcoming(records, testNow)
	require.NotNil(t, selected)
	assert.Equal(t, 2, selected.Record.ID)
	assert.Equal(t, "2024-03-01", selected.Record.SessionDate)
	require.Len(t, ordered, 2)
	// most recent first
	assert.Equal(t, 2, ordered[0].Record.ID)
	assert.Equal(t, 1, ordered[1].Record.ID)
}

func TestSelectUpcoming_TodayCountsAsFuture(t *testing.T) {
	// session earlier today, before "now", still belongs to the future
	// partition: the floor is midnight, not the current instant
	records := []gymapi.SessionRecord{
		{ID: 1, SessionDate: "2024-05-10", StartTime: "06:00:00", Status: "confirmed"},
	}

	selected, _ := schedule.SelectUpcoming(records, testNow)
	require.NotNil(t, selected)
	assert.Equal(t, 1, selected.Record.ID)
}

func TestSelectUpcoming_AllCancelled(t *testing.T) {
	records := []gymapi.SessionRecord{
		{ID: 1, SessionDate: "2024-05-12", StartTime: "18:00:00", Status: "cancelled"},
		{ID: 2, SessionDate: "2024-05-01", StartTime: "18:00:00", Status: "cancelled"},
	}

	selected, ordered := schedule.SelectUpcoming(records, testNow)
	assert.Nil(t, selected)
	assert.Empty(t, ordered)
}

func TestSelectUpcoming_Empty(t *testing.T) {
	selected, ordered := schedule.SelectUpcoming(nil, testNow)
	assert.Nil(t, selected)
	assert.Empty(t, ordered)
}

func TestSelectUpcoming_ExactTies_NoEntryLost(t *testing.T) {
	// several sessions at the exact same timestamp: selection must be
	// deterministic (lowest ID) and nothing may drop out of the list
	records := []gymapi.SessionRecord{
		{ID: 30, SessionDate: "2024-05-12", StartTime: "18:00:00", Status: "pending"},
		{ID: 10, SessionDate: "2024-05-12", StartTime: "18:00:00", Status: "confirmed"},
		{ID: 20, SessionDate: "2024-05-12", StartTime: "18:00:00", Status: "pending"},
	}

	for range 20 {
		selected, ordered := schedule.SelectUpcoming(records, testNow)
		require.NotNil(t, selected)
		assert.Equal(t, 10, selected.Record.ID)
		require.Len(t, ordered, 3)

		seen := map[int]bool{}
		for _, entry := range ordered {
			seen[entry.Record.ID] = true
		}
		assert.Len(t, seen, 3)
	}
}

func TestSelectUpcoming_MissingStartTimeSortsAtMidnight(t *testing.T) {
	records := []gymapi.SessionRecord{
		{ID: 1, SessionDate: "2024-05-12", StartTime: "", Status: "pending"},
		{ID: 2, SessionDate: "2024-05-12", StartTime: "09:00:00", Status: "pending"},
	}

	selected, _ := schedule.SelectUpcoming(records, testNow)
	require.NotNil(t, selected)
	// midnight sorts before 09:00 on the same day
	assert.Equal(t, 1, selected.Record.ID)
}

func TestDisplayForStatus(t *testing.T) {
	testCases := []struct {
		status         string
		wantText       string
		wantBackground string
		wantColor      string
	}{
		{"pending", "Chờ duyệt", "#fff8e7", "#ff8f00"},
		{"confirmed", "Đã xác nhận", "#e7f6e7", "#2e7d32"},
		{"completed", "Đã hoàn thành", "#e3f2fd", "#1565c0"},
		{"cancelled", "Đã hủy", "#ffebee", "#c62828"},
		{"rescheduled", "Đã đổi lịch", "#f3e5f5", "#7b1fa2"},
		// unknown codes pass through verbatim with neutral colors
		{"no_show", "no_show", "#f5f5f5", "#616161"},
		{"", "", "#f5f5f5", "#616161"},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			display := schedule.DisplayForStatus(tc.status)
			assert.Equal(t, tc.wantText, display.Text)
			assert.Equal(t, tc.wantBackground, display.Background)
			assert.Equal(t, tc.wantColor, display.Color)
		})
	}
}

func TestFormatDate(t *testing.T) {
	// 2024-05-12 is a Sunday
	assert.Equal(t, "Chủ Nhật, 12 tháng 5, 2024", schedule.FormatDate("2024-05-12"))
	// 2024-05-13 is a Monday
	assert.Equal(t, "Thứ Hai, 13 tháng 5, 2024", schedule.FormatDate("2024-05-13"))
	// garbage passes through
	assert.Equal(t, "not-a-date", schedule.FormatDate("not-a-date"))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "18:00", schedule.FormatTime("18:00:00"))
	assert.Equal(t, "09:30", schedule.FormatTime("09:30:15"))
	assert.Equal(t, "", schedule.FormatTime(""))
	assert.Equal(t, "9:3", schedule.FormatTime("9:3"))
}

func TestBuildViewModel(t *testing.T) {
	now := testNow
	records := []gymapi.SessionRecord{
		{
			ID:          5,
			SessionDate: "2024-05-12",
			StartTime:   "18:00:00",
			EndTime:     "19:00:00",
			SessionType: "pt_session",
			TrainerName: "Huấn luyện viên A",
			Status:      "confirmed",
			Notes:       "chân + vai",
		},
	}

	selected, _ := schedule.SelectUpcoming(records, now)
	require.NotNil(t, selected)

	vm := schedule.BuildViewModel(*selected)
	assert.Equal(t, 5, vm.ID)
	assert.Equal(t, "Chủ Nhật, 12 tháng 5, 2024", vm.Date)
	assert.Equal(t, "18:00 - 19:00", vm.Time)
	assert.Equal(t, "Với Trainer", vm.Type)
	assert.Equal(t, "Huấn luyện viên A", vm.PTName)
	assert.Equal(t, "Đã xác nhận", vm.StatusText.Text)
	assert.Equal(t, "chân + vai", vm.Notes)
}

func TestBuildViewModel_SelfDirected(t *testing.T) {
	entry := schedule.Entry{
		Record: gymapi.SessionRecord{
			ID:          6,
			SessionDate: "2024-05-13",
			StartTime:   "07:00:00",
			EndTime:     "08:00:00",
			SessionType: "self_training",
			Status:      "pending",
		},
	}

	vm := schedule.BuildViewModel(entry)
	assert.Equal(t, "Tự tập", vm.Type)
	assert.Empty(t, vm.PTName)
}
