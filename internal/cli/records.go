package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/iudanet/drfriend/internal/lifecycle"
	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/payload"
	"github.com/iudanet/drfriend/internal/validation"
)

// runUpload читает файл, кодирует его в data URI и добавляет в категорию
func (c *Cli) runUpload(ctx context.Context, category models.Category, path, name string) error {
	info, err := c.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if c.maxUpload > 0 && info.Size() > c.maxUpload {
		return fmt.Errorf("%w: %s, limit is %s", ErrFileTooLarge,
			humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(c.maxUpload)))
	}

	content, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = filepath.Base(path)
	}
	if err := validation.ValidateFileName(name); err != nil {
		return err
	}

	mimeType := payload.DetectMime(path, content)
	rec := c.lifecycle.CreateRecord(name, mimeType, payload.Encode(content, mimeType))
	if err := c.lifecycle.Add(ctx, category, rec); err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}

	c.io.Printf("Uploaded %s to %s\n", rec.Name, category)
	c.io.Printf("ID: %s\n", rec.ID)
	return nil
}

// runList печатает записи одной категории или всех категорий
func (c *Cli) runList(ctx context.Context, category string) error {
	set, err := c.lifecycle.Records(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	categories := models.Categories()
	if category != "" {
		parsed, err := models.ParseCategory(category)
		if err != nil {
			return err
		}
		categories = []models.Category{parsed}
	}

	for i, cat := range categories {
		if i > 0 {
			c.io.Println()
		}
		records := set[cat]
		c.io.Printf("=== %s (%d) ===\n", cat.Title(), len(records))
		if len(records) == 0 {
			c.io.Println("No records.")
			continue
		}
		for n, rec := range records {
			c.printRecordLine(n+1, rec)
		}
	}
	return nil
}

// runCounts печатает количество записей по категориям
func (c *Cli) runCounts(ctx context.Context) error {
	counts, err := c.lifecycle.Counts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	total := 0
	for _, cat := range models.Categories() {
		c.io.Printf("%-14s %d\n", cat.Title()+":", counts[cat])
		total += counts[cat]
	}
	c.io.Printf("%-14s %d\n", "Total:", total)
	return nil
}

// runShow печатает метаданные записи или записи корзины
func (c *Cli) runShow(ctx context.Context, id string) error {
	category, rec, err := c.lifecycle.Record(ctx, id)
	if err == nil {
		c.printRecordDetails(*rec, category, "records")
		return nil
	}
	if !errors.Is(err, lifecycle.ErrRecordNotFound) {
		return fmt.Errorf("failed to load record: %w", err)
	}

	entry, err := c.lifecycle.TrashEntry(ctx, id)
	if err != nil {
		if errors.Is(err, lifecycle.ErrTrashEntryNotFound) {
			return fmt.Errorf("%w: %s", lifecycle.ErrRecordNotFound, id)
		}
		return fmt.Errorf("failed to load trash entry: %w", err)
	}
	c.printRecordDetails(entry.Record(), entry.OriginCategory(), "trash")
	return nil
}

// runDownload декодирует содержимое записи в файл
func (c *Cli) runDownload(ctx context.Context, id, output string, force bool) error {
	_, rec, err := c.lifecycle.Record(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load record %s: %w", id, err)
	}

	data, _, err := payload.Decode(rec.Data)
	if err != nil {
		return fmt.Errorf("stored file %s is corrupted: %w", id, err)
	}

	if output == "" {
		output = payload.DownloadName(*rec)
	}
	if !force {
		exists, err := afero.Exists(c.fs, output)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", output, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrFileExists, output)
		}
	}

	if err := afero.WriteFile(c.fs, output, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	c.io.Printf("Saved %s (%s)\n", output, humanize.IBytes(uint64(len(data))))
	return nil
}

// runDelete перемещает запись в корзину
func (c *Cli) runDelete(ctx context.Context, id string, yes bool) error {
	category, rec, err := c.lifecycle.Record(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load record %s: %w", id, err)
	}

	if err := c.confirm(fmt.Sprintf("Move %q from %s to trash?", rec.Name, category), yes); err != nil {
		return err
	}

	entry, err := c.lifecycle.MoveToTrashByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to move record to trash: %w", err)
	}

	c.io.Printf("Moved %s to trash\n", entry.Name)
	return nil
}

func (c *Cli) printRecordLine(n int, rec models.FileRecord) {
	c.io.Printf("%d. %s\n", n, displayName(rec))
	c.io.Printf("   ID:   %s\n", rec.ID)
	c.io.Printf("   Date: %s  Size: %s\n", rec.Date, recordSize(rec))
}

func (c *Cli) printRecordDetails(rec models.FileRecord, category models.Category, location string) {
	c.io.Printf("Name:     %s\n", displayName(rec))
	c.io.Printf("ID:       %s\n", rec.ID)
	c.io.Printf("Category: %s\n", category)
	c.io.Printf("Location: %s\n", location)
	c.io.Printf("Type:     %s\n", valueOr(rec.Mime, "unknown"))
	c.io.Printf("Size:     %s\n", recordSize(rec))
	c.io.Printf("Date:     %s\n", rec.Date)
}

// recordSize возвращает размер декодированного содержимого
func recordSize(rec models.FileRecord) string {
	data, _, err := payload.Decode(rec.Data)
	if err != nil {
		return "corrupted"
	}
	return humanize.IBytes(uint64(len(data)))
}

func displayName(rec models.FileRecord) string {
	return valueOr(rec.Name, "(unnamed)")
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
