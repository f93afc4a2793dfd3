package acquiring

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/pkg/utils"
)

// demoSeed keeps demo data stable across refreshes so the dashboard does
// not jump around while running without credentials.
const demoSeed = 7

var (
	demoTeams   = []string{"Growth", "Delivery", "Operations", "Customer Success"}
	demoClients = []string{"Acme", "Globex", "Initech", "Umbrella", "Stark"}
)

// DemoDataset builds a deterministic synthetic dataset covering the last
// year: 100 deals, 2000 time entries and 300 invoices. The reason records
// why the live fetch was skipped or failed.
func DemoDataset(reason string) *domain.Dataset {
	rng := rand.New(rand.NewSource(demoSeed))

	today := time.Now().UTC().Truncate(24 * time.Hour)
	randomDate := func() *time.Time {
		date := today.AddDate(0, 0, -rng.Intn(365))
		return &date
	}

	deals := make([]domain.Deal, 0, 100)
	for i := 1; i <= 100; i++ {
		deals = append(deals, domain.Deal{
			DealName:      fmt.Sprintf("Deal-%d", i),
			Team:          demoTeams[rng.Intn(len(demoTeams))],
			CloseDate:     randomDate(),
			DealValue:     float64(8000 + rng.Intn(112000)),
			CostToDeliver: float64(3000 + rng.Intn(67000)),
		})
	}

	timeEntries := make([]domain.TimeEntry, 0, 2000)
	for i := 0; i < 2000; i++ {
		hours := utils.RoundWithTwoDecimalPlace(0.5 + rng.Float64()*7.5)
		rate := 80 + rng.Float64()*140

		timeEntries = append(timeEntries, domain.TimeEntry{
			Date:           randomDate(),
			Team:           demoTeams[rng.Intn(len(demoTeams))],
			Project:        fmt.Sprintf("Project-%d", i%40),
			Client:         demoClients[rng.Intn(len(demoClients))],
			Hours:          hours,
			Billable:       rng.Float64() < 0.8,
			BillableAmount: utils.RoundWithTwoDecimalPlace(hours * rate),
		})
	}

	invoices := make([]domain.Invoice, 0, 300)
	for i := 0; i < 300; i++ {
		date := randomDate()
		dueDate := date.AddDate(0, 0, 30)

		total := float64(2000 + rng.Intn(63000))
		paid := utils.RoundWithTwoDecimalPlace(total * (0.65 + rng.Float64()*0.35))

		invoices = append(invoices, domain.Invoice{
			InvoiceNumber: fmt.Sprintf("INV-%d", 1000+i),
			Contact:       demoClients[rng.Intn(len(demoClients))],
			Status:        demoStatus(rng),
			Date:          date,
			DueDate:       &dueDate,
			Total:         total,
			AmountPaid:    paid,
			AmountDue:     utils.RoundWithTwoDecimalPlace(total - paid),
		})
	}

	return &domain.Dataset{
		Origin:         domain.OriginDemo,
		FallbackReason: reason,
		Deals:          deals,
		TimeEntries:    timeEntries,
		Invoices:       invoices,
	}
}

func demoStatus(rng *rand.Rand) string {
	roll := rng.Float64()
	switch {
	case roll < 0.7:
		return domain.InvoiceStatusPaid
	case roll < 0.9:
		return domain.InvoiceStatusAuthorised
	default:
		return domain.InvoiceStatusSubmitted
	}
}
