package repo

import (
	"github.com/GlebRadaev/gridbill/internal/pg"
	billrepo "github.com/GlebRadaev/gridbill/internal/repo/bill-repo"
	connectionrepo "github.com/GlebRadaev/gridbill/internal/repo/connection-repo"
	customerrepo "github.com/GlebRadaev/gridbill/internal/repo/customer-repo"
	paymentrepo "github.com/GlebRadaev/gridbill/internal/repo/payment-repo"
	readingrepo "github.com/GlebRadaev/gridbill/internal/repo/reading-repo"
	resetrepo "github.com/GlebRadaev/gridbill/internal/repo/reset-repo"
	tariffrepo "github.com/GlebRadaev/gridbill/internal/repo/tariff-repo"
	workorderrepo "github.com/GlebRadaev/gridbill/internal/repo/workorder-repo"
)

// Repositories holds the concrete stores; each one satisfies the narrow
// interfaces declared by the services that use it.
type Repositories struct {
	CustomerRepo   *customerrepo.Repository
	ReadingRepo    *readingrepo.Repository
	TariffRepo     *tariffrepo.Repository
	BillRepo       *billrepo.Repository
	PaymentRepo    *paymentrepo.Repository
	WorkOrderRepo  *workorderrepo.Repository
	ConnectionRepo *connectionrepo.Repository
	ResetRepo      *resetrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		CustomerRepo:   customerrepo.New(conn, txManager),
		ReadingRepo:    readingrepo.New(conn, txManager),
		TariffRepo:     tariffrepo.New(conn, txManager),
		BillRepo:       billrepo.New(conn, txManager),
		PaymentRepo:    paymentrepo.New(conn, txManager),
		WorkOrderRepo:  workorderrepo.New(conn, txManager),
		ConnectionRepo: connectionrepo.New(conn, txManager),
		ResetRepo:      resetrepo.New(conn, txManager),
	}
}
