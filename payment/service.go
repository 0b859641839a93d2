package payment

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/payment/business/compensation"
	"encore.app/payment/business/retry"
	"encore.app/payment/business/security"
	"encore.app/payment/collaborator"
	"encore.app/payment/middleware/sectoken"
	"encore.app/payment/model"
	"encore.app/payment/repository/compensations"
	"encore.app/payment/repository/retrytasks"
)

var paymentDB = sqldb.NewDatabase("payment", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

var secrets struct {
	PaymentTokenSecret string // HMAC key for internal security tokens
}

const configRefreshInterval = 10 * time.Minute

//encore:service
type Service struct {
	security     security.Business
	retry        retry.Business
	compensation compensation.Business
	orders       compensation.OrderStore
	cancel       context.CancelFunc
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(paymentDB)

	rlog.Info("Initializing repositories")
	taskRepo := retrytasks.New(pgxdb)
	recordRepo := compensations.New(pgxdb)

	publisher := topicPublisher{}

	source := security.NewEnvSource("PAYMENT", providerNames())
	sec := security.NewSecurityBusiness(source, validate, []byte(secrets.PaymentTokenSecret))

	scheduler := retry.NewScheduler(taskRepo, publisher, retry.DefaultConfig())

	orders := collaborator.NewOrders(pgxdb)
	comp := compensation.NewCompensationBusiness(
		recordRepo,
		orders,
		collaborator.NewInventory(pgxdb),
		collaborator.NewCommissions(pgxdb),
		collaborator.NewRefunds(pgxdb),
		scheduler,
		publisher,
	)
	scheduler.RegisterHandler(model.RetryTaskCompensation, comp.HandleRetryTask)

	sectoken.Configure(sec)

	ctx, cancel := context.WithCancel(context.Background())
	go scheduler.Run(ctx)
	go sec.AutoRefresh(ctx, configRefreshInterval)

	return &Service{
		security:     sec,
		retry:        scheduler,
		compensation: comp,
		orders:       orders,
		cancel:       cancel,
	}, nil
}

// Shutdown stops the scheduler loop and the config refresher; in-flight
// retry attempts drain before the loop exits.
func (s *Service) Shutdown(force context.Context) {
	s.cancel()
}

func providerNames() []string {
	raw := os.Getenv("PAYMENT_PROVIDERS")
	if raw == "" {
		raw = "wechat,alipay"
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
