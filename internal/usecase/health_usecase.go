package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	webhookConfigured bool
}

func NewHealthUsecase(webhookURL string) HealthUsecase {
	return &healthUsecase{webhookConfigured: webhookURL != ""}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	contact := "ok"
	if !u.webhookConfigured {
		contact = "unconfigured"
	}
	return map[string]string{
		"status":  "ok",
		"contact": contact,
	}
}
