package usecase

import (
	"context"
	"errors"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/infrastructure/logger"
	"dealer_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrFileNotFound         = errors.New("file not found")
	ErrInvalidFile          = errors.New("invalid file")
	ErrFileTooLarge         = errors.New("file too large")
	ErrStorageNotConfigured = errors.New("object storage not configured")
	ErrNoImagesGenerated    = errors.New("image generation returned no images")
	ErrInvalidImagePrompt   = errors.New("invalid image prompt")
)

// MaxUploadBytes caps a single vehicle file upload.
const MaxUploadBytes = 25 << 20

// Upload is a file received from the client.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type IMediaUseCase interface {
	UploadFile(ctx context.Context, stockNumber string, up Upload) (entities.FileRecord, error)
	ListFiles(ctx context.Context, stockNumber string) ([]entities.FileRecord, error)
	DeleteFile(ctx context.Context, stockNumber string, id int64) error
	GenerateImages(ctx context.Context, stockNumber string, prompt string) ([]entities.FileRecord, error)
}

type MediaUseCase struct {
	vehicles interfaces.IVehicleRepository
	files    interfaces.IFileRepository
	storage  interfaces.IObjectStorage
	webhooks interfaces.IWebhookClient
	now      func() time.Time
	log      *zap.Logger
}

var _ IMediaUseCase = (*MediaUseCase)(nil)

// NewMediaUseCase wires the media use case. storage may be nil when no bucket
// is configured; uploads then fail with ErrStorageNotConfigured.
func NewMediaUseCase(vehicles interfaces.IVehicleRepository, files interfaces.IFileRepository, storage interfaces.IObjectStorage, webhooks interfaces.IWebhookClient) *MediaUseCase {
	return &MediaUseCase{
		vehicles: vehicles,
		files:    files,
		storage:  storage,
		webhooks: webhooks,
		now:      func() time.Time { return time.Now().UTC() },
		log:      zap.L().Named("media.usecase"),
	}
}

func (u *MediaUseCase) UploadFile(ctx context.Context, stockNumber string, up Upload) (entities.FileRecord, error) {
	v, err := u.vehicle(ctx, stockNumber)
	if err != nil {
		return entities.FileRecord{}, err
	}
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(up.Name), "\\", "/"))
	if name == "" || name == "." || name == "/" || up.Body == nil || up.Size <= 0 {
		return entities.FileRecord{}, ErrInvalidFile
	}
	if up.Size > MaxUploadBytes {
		return entities.FileRecord{}, ErrFileTooLarge
	}
	if u.storage == nil {
		return entities.FileRecord{}, ErrStorageNotConfigured
	}
	contentType := strings.TrimSpace(up.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := v.StockNumber + "/" + uuid.NewString() + "-" + name
	log := logger.WithContext(ctx, u.log).With(zap.String("stock_number", v.StockNumber), zap.String("object_key", key))

	if err := u.storage.Put(ctx, key, up.Body, up.Size, contentType); err != nil {
		log.Error("object upload failed", zap.Error(err))
		return entities.FileRecord{}, err
	}

	rec, err := u.files.Create(ctx, entities.FileRecord{
		StockNumber: v.StockNumber,
		Kind:        entities.FileKindUpload,
		Name:        name,
		ContentType: contentType,
		Size:        up.Size,
		ObjectKey:   key,
		URL:         u.storage.URL(key),
		CreatedAt:   u.now(),
	})
	if err != nil {
		log.Error("file row insert failed; removing object", zap.Error(err))
		if rmErr := u.storage.Remove(ctx, key); rmErr != nil {
			log.Warn("orphaned object left in bucket", zap.Error(rmErr))
		}
		return entities.FileRecord{}, err
	}
	log.Info("file uploaded", zap.Int64("file_id", rec.ID), zap.Int64("size", rec.Size))
	return rec, nil
}

func (u *MediaUseCase) ListFiles(ctx context.Context, stockNumber string) ([]entities.FileRecord, error) {
	v, err := u.vehicle(ctx, stockNumber)
	if err != nil {
		return nil, err
	}
	return u.files.ListByStockNumber(ctx, v.StockNumber)
}

func (u *MediaUseCase) DeleteFile(ctx context.Context, stockNumber string, id int64) error {
	stockNumber = strings.TrimSpace(stockNumber)
	if id <= 0 {
		return ErrFileNotFound
	}
	f, err := u.files.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f.ID == 0 || f.StockNumber != stockNumber {
		return ErrFileNotFound
	}

	if f.ObjectKey != "" {
		if u.storage == nil {
			return ErrStorageNotConfigured
		}
		if err := u.storage.Remove(ctx, f.ObjectKey); err != nil {
			return err
		}
	}
	if err := u.files.Delete(ctx, f.ID); err != nil {
		return err
	}
	logger.WithContext(ctx, u.log).Info("file deleted", zap.String("stock_number", stockNumber), zap.Int64("file_id", id))
	return nil
}

type imageWebhookPayload struct {
	StockNumber string `json:"stock_number"`
	VIN         string `json:"vin"`
	Year        int    `json:"year,omitempty"`
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	Color       string `json:"color,omitempty"`
	Prompt      string `json:"prompt"`
}

// GenerateImages asks the image webhook for marketing images of a vehicle and
// records every returned URL as a generated file.
func (u *MediaUseCase) GenerateImages(ctx context.Context, stockNumber string, prompt string) ([]entities.FileRecord, error) {
	v, err := u.vehicle(ctx, stockNumber)
	if err != nil {
		return nil, err
	}
	prompt = strings.TrimSpace(prompt)
	if len(prompt) > 2000 {
		return nil, ErrInvalidImagePrompt
	}

	res, err := u.webhooks.Fetch(ctx, interfaces.WebhookImage, imageWebhookPayload{
		StockNumber: v.StockNumber,
		VIN:         v.VIN,
		Year:        v.Year,
		Make:        v.Make,
		Model:       v.Model,
		Color:       v.Color,
		Prompt:      prompt,
	})
	if err != nil {
		return nil, err
	}

	urls := imageURLs(res.Payload)
	if len(urls) == 0 {
		return nil, ErrNoImagesGenerated
	}

	out := make([]entities.FileRecord, 0, len(urls))
	for i, url := range urls {
		rec, err := u.files.Create(ctx, entities.FileRecord{
			StockNumber: v.StockNumber,
			Kind:        entities.FileKindGenerated,
			Name:        generatedName(url, i),
			ContentType: "image/*",
			URL:         url,
			CreatedAt:   u.now(),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	logger.WithContext(ctx, u.log).Info("images generated", zap.String("stock_number", v.StockNumber), zap.Int("count", len(out)))
	return out, nil
}

func (u *MediaUseCase) vehicle(ctx context.Context, stockNumber string) (entities.Vehicle, error) {
	stockNumber = strings.TrimSpace(stockNumber)
	if stockNumber == "" {
		return entities.Vehicle{}, ErrInvalidStockNumber
	}
	v, err := u.vehicles.GetByStockNumber(ctx, stockNumber)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == 0 {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

// imageURLs collects the image links of a generator response, in order and
// without duplicates. Accepted forms: images as strings or {url} objects,
// urls as strings, or a single url.
func imageURLs(m map[string]interface{}) []string {
	var out []string
	seen := map[string]bool{}
	add := func(v interface{}) {
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case map[string]interface{}:
			s, _ = t["url"].(string)
		}
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, key := range []string{"images", "urls"} {
		if list, ok := m[key].([]interface{}); ok {
			for _, item := range list {
				add(item)
			}
		}
	}
	add(m["url"])
	return out
}

func generatedName(url string, i int) string {
	name := path.Base(strings.SplitN(url, "?", 2)[0])
	if name == "" || name == "." || name == "/" {
		return "generated-" + strconv.Itoa(i+1)
	}
	return name
}
