package service

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"quikchek/internal/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// staleAge protects freshly scanned uploads that have not been attached to a
// document yet from being swept.
const staleAge = 24 * time.Hour

// Janitor periodically removes upload files no document references anymore.
type Janitor struct {
	docRepo   *repository.DocumentRepository
	uploadDir string
	schedule  string
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewJanitor(docRepo *repository.DocumentRepository, uploadDir, schedule string, logger *zap.Logger) *Janitor {
	return &Janitor{
		docRepo:   docRepo,
		uploadDir: uploadDir,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger,
	}
}

func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.sweep); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("Upload janitor started", zap.String("schedule", j.schedule))
	return nil
}

func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	urls, err := j.docRepo.ListImageURLs(ctx)
	if err != nil {
		j.logger.Error("Janitor failed to list referenced images", zap.Error(err))
		return
	}

	referenced := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		referenced[filepath.Base(url)] = struct{}{}
	}

	entries, err := os.ReadDir(j.uploadDir)
	if err != nil {
		j.logger.Error("Janitor failed to read upload directory", zap.Error(err))
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := referenced[entry.Name()]; ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < staleAge {
			continue
		}
		if err := os.Remove(filepath.Join(j.uploadDir, entry.Name())); err != nil {
			j.logger.Warn("Janitor failed to remove file", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		j.logger.Info("Janitor swept orphaned uploads", zap.Int("removed", removed))
	}
}
