package usecase

import (
	"context"

	"portfolio-site/internal/domain"
)

type siteUsecase struct {
	content *domain.SiteContent
}

// NewSiteUsecase serves content loaded once at startup
func NewSiteUsecase(content *domain.SiteContent) domain.SiteUsecase {
	return &siteUsecase{content: content}
}

func (u *siteUsecase) GetContent(ctx context.Context) *domain.SiteContent {
	return u.content
}
