package repository

import (
	"context"
	"time"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/platform/storage"

	"github.com/rs/zerolog"
)

type AlertRepository interface {
	List(ctx context.Context) []model.Alert
	FindByID(ctx context.Context, id string) (*model.Alert, error)
	Create(ctx context.Context, alert *model.Alert) error
	Update(ctx context.Context, alert *model.Alert) error
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}

type jsonAlertRepository struct {
	alerts *storage.Collection[model.Alert]
}

func NewJSONAlertRepository(backend storage.Backend, log zerolog.Logger) AlertRepository {
	return &jsonAlertRepository{
		alerts: storage.NewCollection[model.Alert](backend, "alerts", log),
	}
}

func (r *jsonAlertRepository) List(ctx context.Context) []model.Alert {
	return r.alerts.Read()
}

func (r *jsonAlertRepository) FindByID(ctx context.Context, id string) (*model.Alert, error) {
	alert, ok := r.alerts.FindByID(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	return &alert, nil
}

func (r *jsonAlertRepository) Create(ctx context.Context, alert *model.Alert) error {
	alerts := r.alerts.Read()
	return r.alerts.Write(append(alerts, *alert))
}

func (r *jsonAlertRepository) Update(ctx context.Context, alert *model.Alert) error {
	alerts := r.alerts.Read()
	index := -1
	for i := range alerts {
		if alerts[i].ID == alert.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return common.ErrNotFound
	}
	alerts[index] = *alert
	return r.alerts.Write(alerts)
}

func (r *jsonAlertRepository) Delete(ctx context.Context, id string) error {
	alerts := r.alerts.Read()
	filtered := make([]model.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.ID != id {
			filtered = append(filtered, alert)
		}
	}
	if len(filtered) == len(alerts) {
		return common.ErrNotFound
	}
	return r.alerts.Write(filtered)
}

// Seed writes the sample alert the first time the collection comes up empty.
func (r *jsonAlertRepository) Seed(ctx context.Context) error {
	if len(r.alerts.Read()) > 0 {
		return nil
	}
	now := time.Now()
	return r.alerts.Write([]model.Alert{
		{
			ID:            "1",
			Title:         "Flood Alert in Assam",
			Severity:      model.SeverityMajor,
			Date:          now,
			AffectedAreas: []string{"Assam", "Guwahati"},
			Details:       "Heavy rainfall expected in the region",
			Region:        "India",
			CreatedAt:     now,
		},
	})
}
