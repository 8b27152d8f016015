package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	cacheadp "freelance-engagement-backend/internal/adapter/cache"
	httpadp "freelance-engagement-backend/internal/adapter/http"
	"freelance-engagement-backend/internal/adapter/middleware"
	"freelance-engagement-backend/internal/adapter/repository/mysql"
	"freelance-engagement-backend/internal/config"
	clientDomain "freelance-engagement-backend/internal/domain/client"
	contractDomain "freelance-engagement-backend/internal/domain/contract"
	deliverableDomain "freelance-engagement-backend/internal/domain/deliverable"
	ledgerDomain "freelance-engagement-backend/internal/domain/ledger"
	projectDomain "freelance-engagement-backend/internal/domain/project"
	proposalDomain "freelance-engagement-backend/internal/domain/proposal"
	infracache "freelance-engagement-backend/internal/infrastructure/cache"
	"freelance-engagement-backend/internal/infrastructure/db"
	clientUC "freelance-engagement-backend/internal/usecase/client"
	contractUC "freelance-engagement-backend/internal/usecase/contract"
	deliverableUC "freelance-engagement-backend/internal/usecase/deliverable"
	ledgerUC "freelance-engagement-backend/internal/usecase/ledger"
	projectUC "freelance-engagement-backend/internal/usecase/project"
	proposalUC "freelance-engagement-backend/internal/usecase/proposal"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logrus.WithError(err).Fatal("mysql connect failed")
	}
	if err := gdb.AutoMigrate(
		&clientDomain.Client{},
		&proposalDomain.Proposal{},
		&projectDomain.Project{},
		&projectDomain.Advance{},
		&contractDomain.Contract{},
		&deliverableDomain.Deliverable{},
		&ledgerDomain.Entry{},
	); err != nil {
		logrus.WithError(err).Fatal("migrate failed")
	}

	rdb, err := infracache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logrus.WithError(err).Fatal("redis connect failed")
	}

	clients := mysql.NewClientRepository(gdb)
	proposals := mysql.NewProposalRepository(gdb)
	projects := mysql.NewProjectRepository(gdb)
	contracts := mysql.NewContractRepository(gdb)
	deliverables := mysql.NewDeliverableRepository(gdb)
	entries := mysql.NewLedgerRepository(gdb)
	txManager := mysql.NewGormUoW(gdb)
	progressCache := cacheadp.NewProgressCache(rdb, time.Duration(cfg.ProgressCacheTTLSecs)*time.Second)

	clientsUC := clientUC.NewUsecase(clients)
	proposalsUC := proposalUC.NewUsecase(proposals, clients, txManager)
	projectsUC := projectUC.NewUsecase(projects, clients, deliverables, txManager, progressCache)
	contractsUC := contractUC.NewUsecase(contracts, projects, txManager)
	deliverablesUC := deliverableUC.NewUsecase(deliverables, txManager, progressCache)
	ledgersUC := ledgerUC.NewUsecase(entries, projects, clients)

	h := httpadp.NewHandler()
	clientH := httpadp.NewClientHandler(clientsUC)
	proposalH := httpadp.NewProposalHandler(proposalsUC)
	projectH := httpadp.NewProjectHandler(projectsUC, proposalsUC)
	contractH := httpadp.NewContractHandler(contractsUC)
	deliverableH := httpadp.NewDeliverableHandler(deliverablesUC)
	ledgerH := httpadp.NewLedgerHandler(ledgersUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/health", h.Health)

	e.POST("/clients", clientH.CreateClient)
	e.GET("/clients", clientH.ListClients)
	e.GET("/clients/:client_id", clientH.GetClient)
	e.PATCH("/clients/:client_id/contact", clientH.UpdateContact)

	e.POST("/proposals", proposalH.CreateProposal)
	e.GET("/proposals", proposalH.ListProposals)
	e.GET("/proposals/:proposal_id", proposalH.GetProposal)
	e.POST("/proposals/:proposal_id/accept", proposalH.AcceptProposal)
	e.POST("/proposals/:proposal_id/reject", proposalH.RejectProposal)

	e.POST("/projects", projectH.CreateProject)
	e.POST("/projects/from-proposal/:proposal_id", projectH.CreateFromProposal)
	e.GET("/projects", projectH.ListProjects)
	e.GET("/projects/:project_id", projectH.GetProject)
	e.POST("/projects/:project_id/status", projectH.ChangeStatus)
	e.POST("/projects/:project_id/advances", projectH.RegisterAdvance)
	e.PATCH("/projects/:project_id/dates", projectH.UpdateDates)
	e.GET("/projects/:project_id/contract", contractH.GetProjectContract)
	e.GET("/projects/:project_id/deliverables", deliverableH.ListProjectDeliverables)

	e.POST("/contracts", contractH.GenerateContract)
	e.GET("/contracts", contractH.ListContracts)
	e.GET("/contracts/:contract_id", contractH.GetContract)
	e.POST("/contracts/:contract_id/sign", contractH.SignContract)
	e.POST("/contracts/:contract_id/cancel", contractH.CancelContract)

	e.POST("/deliverables", deliverableH.CreateDeliverable)
	e.GET("/deliverables/:deliverable_id", deliverableH.GetDeliverable)
	e.POST("/deliverables/:deliverable_id/status", deliverableH.ChangeStatus)

	e.POST("/ledger/entries", ledgerH.RecordEntry)
	e.GET("/ledger/entries", ledgerH.ListEntries)
	e.GET("/ledger/balance", ledgerH.GetBalance)

	addr := ":" + cfg.AppPort
	logrus.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
