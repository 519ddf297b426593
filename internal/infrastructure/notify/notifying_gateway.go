package notify

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/pkg/mailer"
	mailtpl "github.com/oksasatya/go-ddd-user-management/pkg/mailer/templates"
)

// Publisher puts a JSON message on the email queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// NotifyingGateway queues an email job after each successful write made
// through the wrapped gateway. Publishing failures are logged only.
type NotifyingGateway struct {
	gateway.UserGateway
	pub    Publisher
	brand  mailtpl.Brand
	logger *logrus.Logger
	now    func() time.Time
}

func NewNotifyingGateway(next gateway.UserGateway, pub Publisher, brand mailtpl.Brand, logger *logrus.Logger) *NotifyingGateway {
	return &NotifyingGateway{UserGateway: next, pub: pub, brand: brand, logger: logger, now: time.Now}
}

func (g *NotifyingGateway) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	created, err := g.UserGateway.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	g.publish(ctx, mailer.EmailJob{
		To:       created.Email().String(),
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(g.brand, created.Name(), created.Email().String(), mailtpl.WithTime(created.CreatedAt())),
	}, created.ID().String())
	return created, nil
}

// Save looks up the stored user first so the email can list what changed.
// Saves that change nothing queue no email.
func (g *NotifyingGateway) Save(ctx context.Context, u *entity.User) error {
	before, lookupErr := g.UserGateway.FindByID(ctx, u.ID().String())
	if err := g.UserGateway.Save(ctx, u); err != nil {
		return err
	}
	if lookupErr != nil || before == nil {
		g.warn(lookupErr, "previous state unavailable; skipping notification", u.ID().String())
		return nil
	}
	changes := diff(before, u)
	if len(changes) == 0 {
		return nil
	}
	g.publish(ctx, mailer.EmailJob{
		To:       u.Email().String(),
		Template: mailtpl.ProfileUpdated,
		Data:     mailtpl.NewProfileUpdatedData(g.brand, u.Name(), u.Email().String(), changes, mailtpl.WithTime(g.now())),
	}, u.ID().String())
	return nil
}

func (g *NotifyingGateway) Delete(ctx context.Context, id string) error {
	before, lookupErr := g.UserGateway.FindByID(ctx, id)
	if err := g.UserGateway.Delete(ctx, id); err != nil {
		return err
	}
	if lookupErr != nil || before == nil {
		g.warn(lookupErr, "previous state unavailable; skipping notification", id)
		return nil
	}
	g.publish(ctx, mailer.EmailJob{
		To:       before.Email().String(),
		Template: mailtpl.AccountDeleted,
		Data:     mailtpl.NewAccountDeletedData(g.brand, before.Name(), before.Email().String(), mailtpl.WithTime(g.now())),
	}, id)
	return nil
}

// diff names the fields that differ between two versions of a user.
// Password values are never included.
func diff(before, after *entity.User) map[string]string {
	changes := map[string]string{}
	if before.Name() != after.Name() {
		changes["name"] = after.Name()
	}
	if !before.Email().Equals(after.Email()) {
		changes["email"] = after.Email().String()
	}
	if before.Password() != after.Password() {
		changes["password"] = "changed"
	}
	return changes
}

func (g *NotifyingGateway) publish(ctx context.Context, job mailer.EmailJob, id string) {
	if err := g.pub.PublishJSON(ctx, job); err != nil {
		g.warn(err, "email job publish failed", id)
		return
	}
	if g.logger != nil {
		g.logger.WithFields(logrus.Fields{"template": job.Template, "user_id": id}).Debug("email job queued")
	}
}

func (g *NotifyingGateway) warn(err error, msg, id string) {
	if g.logger == nil {
		return
	}
	entry := g.logger.WithField("user_id", id)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn(msg)
}

var _ gateway.UserGateway = (*NotifyingGateway)(nil)
