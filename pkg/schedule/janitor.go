package schedule

import (
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Janitor periodically closes idle sessions.
type Janitor struct {
	store *Store
	expr  string
	cron  *cron.Cron
}

func NewJanitor(store *Store, expr string) *Janitor {
	return &Janitor{
		store: store,
		expr:  expr,
		cron:  cron.New(),
	}
}

func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc(j.expr, j.run)
	if err != nil {
		return fmt.Errorf("invalid janitor schedule %q: %w", j.expr, err)
	}
	j.cron.Start()
	log.Infof("session janitor started (%s)", j.expr)
	return nil
}

func (j *Janitor) run() {
	if expired := j.store.ExpireIdle(); expired > 0 {
		log.Infof("expired %d idle schedule session(s), %d remaining", expired, j.store.Len())
	}
}

// Stop waits for a running sweep to finish.
func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	log.Info("session janitor stopped")
}
