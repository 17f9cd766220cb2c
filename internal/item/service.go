package item

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/bottle-template/service/internal/scratch"
	"github.com/bottle-template/service/internal/storage"
)

const imageContentType = "image/jpeg"

// ObjectName returns the object storage name of item id's image.
func ObjectName(id string) string {
	return "item-" + id + ".jpg"
}

// Service contains the image upload flow for items.
type Service struct {
	repo    *Repository
	storage storage.Storage
	scratch *scratch.Dir
}

// NewService creates a new item Service.
func NewService(repo *Repository, store storage.Storage, dir *scratch.Dir) *Service {
	return &Service{repo: repo, storage: store, scratch: dir}
}

// UploadImage stages image in its own scratch file, uploads it as
// "item-<id>.jpg" and records the public URL. The scratch file is removed
// whatever the outcome.
func (s *Service) UploadImage(ctx context.Context, id string, image io.Reader) (string, error) {
	path, cleanup, err := s.scratch.Save("item-"+id, ".jpg", image)
	if err != nil {
		return "", fmt.Errorf("stage image: %w", err)
	}
	defer cleanup()

	object := ObjectName(id)
	if err := s.storage.UploadFile(ctx, object, path, imageContentType); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	url := s.storage.PublicURL(object)
	if err := s.repo.SetImage(ctx, id, url); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{"item": id, "object": object}).Info("item image uploaded")
	return url, nil
}
