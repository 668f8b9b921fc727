package schedule

// StatusDisplay is the badge rendering of a session status: localized
// text plus a background/text color pair.
type StatusDisplay struct {
	Text       string `json:"text"`
	Background string `json:"background"`
	Color      string `json:"color"`
}

var statusDisplays = map[string]StatusDisplay{
	"pending":     {Text: "Chờ duyệt", Background: "#fff8e7", Color: "#ff8f00"},
	"confirmed":   {Text: "Đã xác nhận", Background: "#e7f6e7", Color: "#2e7d32"},
	"completed":   {Text: "Đã hoàn thành", Background: "#e3f2fd", Color: "#1565c0"},
	"cancelled":   {Text: "Đã hủy", Background: "#ffebee", Color: "#c62828"},
	"rescheduled": {Text: "Đã đổi lịch", Background: "#f3e5f5", Color: "#7b1fa2"},
}

var fallbackStatusDisplay = StatusDisplay{Background: "#f5f5f5", Color: "#616161"}

// DisplayForStatus maps a session status to its badge. Unknown codes
// pass through verbatim with neutral colors; they never fail.
func DisplayForStatus(status string) StatusDisplay {
	if display, ok := statusDisplays[status]; ok {
		return display
	}
	display := fallbackStatusDisplay
	display.Text = status
	return display
}
