package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/GlebRadaev/gridbill/internal/allocator"
	"github.com/GlebRadaev/gridbill/internal/billrun"
	"github.com/GlebRadaev/gridbill/internal/config"
	"github.com/GlebRadaev/gridbill/internal/events"
	"github.com/GlebRadaev/gridbill/internal/handlers/bills"
	"github.com/GlebRadaev/gridbill/internal/handlers/connections"
	"github.com/GlebRadaev/gridbill/internal/handlers/customers"
	"github.com/GlebRadaev/gridbill/internal/handlers/meters"
	"github.com/GlebRadaev/gridbill/internal/handlers/payments"
	"github.com/GlebRadaev/gridbill/internal/handlers/resets"
	"github.com/GlebRadaev/gridbill/internal/handlers/workorders"
	"github.com/GlebRadaev/gridbill/internal/pg"
	"github.com/GlebRadaev/gridbill/internal/repo"
	"github.com/GlebRadaev/gridbill/internal/service/billservice"
	"github.com/GlebRadaev/gridbill/internal/service/connectionservice"
	"github.com/GlebRadaev/gridbill/internal/service/eligibilityservice"
	"github.com/GlebRadaev/gridbill/internal/service/meterservice"
	"github.com/GlebRadaev/gridbill/internal/service/paymentservice"
	"github.com/GlebRadaev/gridbill/internal/service/resetservice"
	"github.com/GlebRadaev/gridbill/internal/service/workorderservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

type WorkOrderService interface {
	workorders.Service
	customers.ReadingRequester
}

type Services struct {
	BillService        bills.Service
	BillRun            *billrun.Service
	PaymentService     payments.Service
	MeterService       meters.Service
	EligibilityService customers.EligibilityService
	WorkOrderService   WorkOrderService
	ConnectionService  connections.Service
	ResetService       resets.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, publisher events.Publisher) *Services {
	ids := allocator.New(cfg.AllocMaxRetries, cfg.AllocBaseDelay)
	hasher := auth.NewHashService(bcrypt.DefaultCost)

	billService := billservice.New(txManager, repo.CustomerRepo, repo.BillRepo, repo.ReadingRepo, repo.TariffRepo, cfg.BillDueDays)
	eligibilityService := eligibilityservice.New(repo.BillRepo, repo.WorkOrderRepo)
	workOrderService := workorderservice.New(txManager, repo.WorkOrderRepo, repo.CustomerRepo, eligibilityService)
	meterService := meterservice.New(txManager, repo.CustomerRepo, repo.ReadingRepo, workOrderService, ids)
	paymentService := paymentservice.New(txManager, repo.BillRepo, repo.PaymentRepo, repo.CustomerRepo)
	connectionService := connectionservice.New(txManager, repo.ConnectionRepo, repo.CustomerRepo, workOrderService, ids,
		hasher, publisher, connectionservice.Options{
			CodeSecret:     cfg.JWTSecret,
			DevExposeCodes: cfg.DevExposeCodes,
		})
	resetService := resetservice.New(txManager, repo.ResetRepo, ids, hasher, publisher, cfg.ResetExpiry)

	return &Services{
		BillService:        billService,
		BillRun:            billrun.New(cfg, repo.CustomerRepo, billService, publisher),
		PaymentService:     paymentService,
		MeterService:       meterService,
		EligibilityService: eligibilityService,
		WorkOrderService:   workOrderService,
		ConnectionService:  connectionService,
		ResetService:       resetService,
	}
}
