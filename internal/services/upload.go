package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/gcp"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type UploadPurpose string

const (
	UploadPurposeProfile UploadPurpose = "PROFILE"
	UploadPurposeImage   UploadPurpose = "IMAGE"
	UploadPurposeProof   UploadPurpose = "PROOF"
	UploadPurposeFee     UploadPurpose = "FEE"
)

var imageExtensions = map[string]bool{"png": true, "jpg": true, "jpeg": true, "gif": true}

// ParseUploadPurpose accepts the purpose case-insensitively.
func ParseUploadPurpose(raw string) (UploadPurpose, error) {
	p := UploadPurpose(strings.ToUpper(strings.TrimSpace(raw)))
	switch p {
	case UploadPurposeProfile, UploadPurposeImage, UploadPurposeProof, UploadPurposeFee:
		return p, nil
	}
	return "", apierr.BadRequest(apierr.CodeInvalidRequest, fmt.Sprintf("unsupported upload purpose %q", raw))
}

func (p UploadPurpose) allows(ext string) bool {
	if imageExtensions[ext] {
		return true
	}
	return p == UploadPurposeProof && ext == "pdf"
}

type UploadedFile struct {
	FileURL string `json:"file_url"`
}

type UploadService interface {
	UploadCenterFile(ctx context.Context, purpose UploadPurpose, filename string, file io.Reader) (*UploadedFile, error)
}

type uploadService struct {
	log    *logger.Logger
	bucket gcp.BucketService
	newID  func() string
}

// NewUploadService accepts a nil bucket; uploads then fail as unavailable.
func NewUploadService(log *logger.Logger, bucket gcp.BucketService) UploadService {
	return &uploadService{
		log:    log.With("service", "UploadService"),
		bucket: bucket,
		newID:  uuid.NewString,
	}
}

func (s *uploadService) UploadCenterFile(ctx context.Context, purpose UploadPurpose, filename string, file io.Reader) (*UploadedFile, error) {
	if s.bucket == nil {
		return nil, apierr.New(http.StatusServiceUnavailable, apierr.CodeServiceUnavailable, errors.New("file storage is not configured"))
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(strings.TrimSpace(filename))), ".")
	if !purpose.allows(ext) {
		return nil, apierr.BadRequest(apierr.CodeInvalidRequest, fmt.Sprintf("file type %q is not allowed for %s", ext, purpose))
	}
	key := fmt.Sprintf("center/%s/%s.%s", strings.ToLower(string(purpose)), s.newID(), ext)
	if err := s.bucket.UploadFile(ctx, key, file); err != nil {
		s.log.Error("Center file upload failed", "key", key, "error", err)
		return nil, apierr.Internal(fmt.Errorf("upload %s: %w", key, err))
	}
	return &UploadedFile{FileURL: s.bucket.GetPublicURL(key)}, nil
}
