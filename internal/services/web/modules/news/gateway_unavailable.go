package news

import (
	"context"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListNews(context.Context) ([]Article, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}

func (unavailableGateway) GetArticle(context.Context, string) (Article, error) {
	return Article{}, apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}

func (unavailableGateway) SetLike(context.Context, string, bool) (string, error) {
	return "", apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}
