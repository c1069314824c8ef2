package service

import (
	"menu-storefront/storefront-svc/internal/apperrors"

	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

type ShareService struct {
	PublicURL string
}

func NewShareService(publicURL string) *ShareService {
	return &ShareService{PublicURL: publicURL}
}

func (s *ShareService) ShareURL(slug string) string {
	return s.PublicURL + DetailHref(slug)
}

func (s *ShareService) QRCode(slug string) ([]byte, error) {
	if !ValidSlug(slug) {
		return nil, apperrors.NewNotFoundError("menu item not found")
	}
	png, err := qrcode.Encode(s.ShareURL(slug), qrcode.Medium, qrCodeSize)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return png, nil
}
