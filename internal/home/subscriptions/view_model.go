package subscriptions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LeHPhuc/GymApp/internal/gymapi"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ViewModel is the current-plan card, ready to render: all money,
// duration and benefit values are display strings.
type ViewModel struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	Benefits      string `json:"benefits"`
	Sessions      int    `json:"sessions"`
	Duration      string `json:"duration"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	RemainingDays int    `json:"remainingDays"`
}

var viPrinter = message.NewPrinter(language.Vietnamese)

// FormatPrice renders an amount the way the app shows it: vi-VN digit
// grouping with the đồng suffix, e.g. 1500000 -> "1.500.000đ".
func FormatPrice(amount float64) string {
	return viPrinter.Sprintf("%vđ", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// JoinBenefits concatenates benefit names in source order.
func JoinBenefits(benefits []gymapi.Benefit) string {
	names := make([]string, 0, len(benefits))
	for _, b := range benefits {
		names = append(names, b.Name)
	}
	return strings.Join(names, ", ")
}

// BuildViewModel turns the selected subscription record into its
// display form. Formatting lives here, away from the selection logic,
// so Active stays testable against raw values.
func BuildViewModel(record gymapi.SubscriptionRecord) ViewModel {
	price, err := strconv.ParseFloat(record.DiscountedPrice, 64)
	if err != nil {
		log.Errorf("subscription %d: parse discounted price %q: %s", record.ID, record.DiscountedPrice, err)
	}

	return ViewModel{
		ID:            record.ID,
		Name:          record.PackageName,
		Price:         FormatPrice(price),
		Benefits:      JoinBenefits(record.Package.Benefits),
		Sessions:      record.RemainingPTSessions,
		Duration:      fmt.Sprintf("%d tháng", record.Package.PackageType.DurationMonths),
		StartDate:     record.StartDate,
		EndDate:       record.EndDate,
		RemainingDays: record.RemainingDays,
	}
}
